package main

import (
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
)

//
// one shot import of an S3 event held in a file (or read from stdin). Handy for backfills and for
// replaying a notification by hand
//
func runEvent(config ServiceConfig, importer *Importer, stdin io.Reader, stdout io.Writer) error {

	var payload []byte
	var err error
	if config.EventFile == "-" {
		payload, err = ioutil.ReadAll(stdin)
	} else {
		payload, err = ioutil.ReadFile(config.EventFile)
	}
	if err != nil {
		return err
	}

	events, err := decodeS3Event(payload)
	if err != nil {
		return err
	}

	response := importer.HandleEvent(context.Background(), events)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(response)
}

//
// end of file
//
