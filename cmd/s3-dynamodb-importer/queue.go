package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/uvalib/virgo4-sqs-sdk/awssqs"
)

//
// S3 can deliver its notifications to an SQS queue instead of invoking us directly. In that case we
// run as a service and poll for them
//
func runQueue(config ServiceConfig, importer *Importer) {

	// load our AWS sqs helper object
	aws, err := awssqs.NewAwsSqs(awssqs.AwsSqsConfig{})
	fatalIfError(err)

	// get the queue handle from the queue name
	inQueueHandle, err := aws.QueueHandle(config.InQueueName)
	fatalIfError(err)

	for {

		messages, err := aws.BatchMessageGet(inQueueHandle, 1, time.Duration(config.PollTimeOut)*time.Second)
		fatalIfError(err)

		// did we get anything to process
		if len(messages) == 0 {
			log.Debugf("no notifications...")
			continue
		}

		log.Printf("INFO: received new notification")
		processQueuePayload(context.Background(), importer, []byte(messages[0].Payload))

		// we always acknowledge, failures have been logged
		opStatus, err := aws.BatchMessageDelete(inQueueHandle, messages)
		if err != nil {
			log.Printf("ERROR: deleting notification: %s", err.Error())
		}

		// check the operation results
		for ix, op := range opStatus {
			if op == false {
				log.Printf("ERROR: message %d failed to delete", ix)
			}
		}
	}

	// should never get here
}

//
// a payload we cannot decode is not going to get any better by being redelivered so we log it and move on
//
func processQueuePayload(ctx context.Context, importer *Importer, payload []byte) Response {

	events, err := decodeS3Event(payload)
	if err != nil {
		log.Printf("WARNING: not an S3 event notification, ignoring it")
		return Response{StatusCode: 200, Body: responseBody}
	}

	return importer.HandleEvent(ctx, events)
}

//
// end of file
//
