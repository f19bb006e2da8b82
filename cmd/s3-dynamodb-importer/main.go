package main

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	log "github.com/sirupsen/logrus"
)

//
// main entry point
//
func main() {

	// CloudWatch is much happier with structured lines
	if len(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")) != 0 {
		log.SetFormatter(&log.JSONFormatter{})
	}

	log.Printf("===> %s service staring up (version: %s) <===", os.Args[0], Version())

	// Get config params and use them to init service context. Any issues are fatal
	cfg := LoadConfiguration()
	if cfg.Debug == true {
		log.SetLevel(log.DebugLevel)
	}

	// the clients are created once and reused for every invocation
	awsConfig := aws.NewConfig()
	if cfg.Region != "" {
		awsConfig = awsConfig.WithRegion(cfg.Region)
	}
	sess, err := session.NewSession(awsConfig)
	fatalIfError(err)

	blobs := NewS3BlobStore(s3.New(sess))
	table := NewDynamoTable(dynamodb.New(sess), cfg.TableName)
	importer := NewImporter(blobs, table, cfg.TableName)

	switch cfg.Mode {
	case modeLambda:
		runLambda(importer)
	case modeQueue:
		runQueue(*cfg, importer)
	case modeEvent:
		err = runEvent(*cfg, importer, os.Stdin, os.Stdout)
		fatalIfError(err)
	}
}

func fatalIfError(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

//
// end of file
//
