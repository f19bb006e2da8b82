package main

import (
	"context"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	log "github.com/sirupsen/logrus"
)

var NotFoundError = fmt.Errorf("object not found")
var AccessError = fmt.Errorf("object access denied")

// the blob store interface
type BlobStore interface {
	Get(ctx context.Context, container string, objectId string) ([]byte, error)
}

// this is our S3 implementation
type s3BlobStore struct {
	client s3iface.S3API
}

// and the factory
func NewS3BlobStore(client s3iface.S3API) BlobStore {
	return &s3BlobStore{client: client}
}

//
// read the entire object into memory. Our objects are JSON documents that we have to parse
// in one go anyway so there is nothing to be gained by spooling them to disk
//
func (s *s3BlobStore) Get(ctx context.Context, container string, objectId string) ([]byte, error) {

	start := time.Now()
	sourcename := fmt.Sprintf("s3://%s/%s", container, objectId)
	log.Debugf("downloading %s", sourcename)

	if len(container) == 0 || len(objectId) == 0 {
		return nil, fmt.Errorf("%w: %s (bucket and key must not be blank)", NotFoundError, sourcename)
	}

	result, err := s.client.GetObjectWithContext(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(objectId),
		})
	if err != nil {
		return nil, classifyFetchError(sourcename, err)
	}
	defer result.Body.Close()

	buf, err := ioutil.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sourcename, err)
	}

	duration := time.Since(start)
	log.Debugf("download of %s complete (%d bytes in %0.2f seconds)", sourcename, len(buf), duration.Seconds())
	return buf, nil
}

//
// map the S3 error codes we understand onto our own error kinds
//
func classifyFetchError(sourcename string, err error) error {

	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchBucket, "NotFound":
			return fmt.Errorf("%w: %s (%s)", NotFoundError, sourcename, aerr.Message())
		case "AccessDenied", "Forbidden", "AllAccessDisabled":
			return fmt.Errorf("%w: %s (%s)", AccessError, sourcename, aerr.Message())
		}
	}
	return fmt.Errorf("fetching %s: %w", sourcename, err)
}

//
// end of file
//
