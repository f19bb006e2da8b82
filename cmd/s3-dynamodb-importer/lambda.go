package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	log "github.com/sirupsen/logrus"
)

func runLambda(importer *Importer) {
	lambda.Start(lambdaHandler(importer))
}

//
// the handler never returns an error, failures are logged and reported in the response
//
func lambdaHandler(importer *Importer) func(context.Context, Events) (Response, error) {

	return func(ctx context.Context, events Events) (Response, error) {

		if lc, ok := lambdacontext.FromContext(ctx); ok == true {
			log.WithFields(log.Fields{"request": lc.AwsRequestID}).Infof("received event with %d records", len(events.Records))
		}

		return importer.HandleEvent(ctx, events), nil
	}
}

//
// end of file
//
