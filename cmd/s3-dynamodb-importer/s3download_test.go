package main

import (
	"bytes"
	"context"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	objects map[string]string
	err     error
	inputs  []*s3.GetObjectInput
}

func (f *fakeS3) GetObjectWithContext(ctx aws.Context, input *s3.GetObjectInput, opts ...request.Option) (*s3.GetObjectOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	content, found := f.objects[aws.StringValue(input.Bucket)+"/"+aws.StringValue(input.Key)]
	if found == false {
		return nil, awserr.New(s3.ErrCodeNoSuchKey, "The specified key does not exist.", nil)
	}
	return &s3.GetObjectOutput{Body: ioutil.NopCloser(bytes.NewReader([]byte(content)))}, nil
}

func TestS3Get(t *testing.T) {

	client := &fakeS3{objects: map[string]string{"import-bucket/orders/1.json": `[{"id":"a1"}]`}}
	store := NewS3BlobStore(client)

	buf, err := store.Get(context.Background(), "import-bucket", "orders/1.json")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a1"}]`, string(buf))

	require.Len(t, client.inputs, 1)
	assert.Equal(t, "import-bucket", aws.StringValue(client.inputs[0].Bucket))
	assert.Equal(t, "orders/1.json", aws.StringValue(client.inputs[0].Key))
}

func TestS3GetMissing(t *testing.T) {

	store := NewS3BlobStore(&fakeS3{objects: map[string]string{}})

	_, err := store.Get(context.Background(), "import-bucket", "orders/missing.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, NotFoundError))
	assert.Contains(t, err.Error(), "s3://import-bucket/orders/missing.json")
}

func TestS3GetBlankLocation(t *testing.T) {

	client := &fakeS3{}
	store := NewS3BlobStore(client)

	_, err := store.Get(context.Background(), "", "orders/1.json")
	assert.True(t, errors.Is(err, NotFoundError))
	_, err = store.Get(context.Background(), "import-bucket", "")
	assert.True(t, errors.Is(err, NotFoundError))
	assert.Empty(t, client.inputs)
}

func TestClassifyFetchError(t *testing.T) {

	tests := []struct {
		err  error
		want error
	}{
		{awserr.New(s3.ErrCodeNoSuchKey, "no such key", nil), NotFoundError},
		{awserr.New(s3.ErrCodeNoSuchBucket, "no such bucket", nil), NotFoundError},
		{awserr.New("NotFound", "not found", nil), NotFoundError},
		{awserr.New("AccessDenied", "access denied", nil), AccessError},
		{awserr.New("Forbidden", "forbidden", nil), AccessError},
	}

	for _, tt := range tests {
		err := classifyFetchError("s3://b/k", tt.err)
		assert.True(t, errors.Is(err, tt.want), "%s: got %v", tt.err.Error(), err)
	}

	other := errors.New("connection reset")
	err := classifyFetchError("s3://b/k", other)
	assert.True(t, errors.Is(err, other))
	assert.False(t, errors.Is(err, NotFoundError))
	assert.False(t, errors.Is(err, AccessError))
}

//
// end of file
//
