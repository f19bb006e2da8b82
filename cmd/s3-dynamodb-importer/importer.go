package main

import (
	"context"
	"fmt"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
)

var responseBody = "Processing complete"

// Importer moves the records of newly created S3 objects into the destination table
type Importer struct {
	blobs     BlobStore
	table     Table
	tableName string
}

func NewImporter(blobs BlobStore, table Table, tableName string) *Importer {
	return &Importer{blobs: blobs, table: table, tableName: tableName}
}

//
// process every object created notification in the event. Failures are logged and reported in the
// per notification status but never fail the invocation; we always acknowledge
//
func (imp *Importer) HandleEvent(ctx context.Context, events Events) Response {

	notifications := selectNotifications(events)
	if len(notifications) == 0 {
		log.Printf("INFO: no object created notifications in event (%d records), nothing to do", len(events.Records))
	}

	statuses := make([]NotificationStatus, 0, len(notifications))
	for _, n := range notifications {
		statuses = append(statuses, imp.processNotification(ctx, n))
	}

	return Response{StatusCode: 200, Body: responseBody, Notifications: statuses}
}

func (imp *Importer) processNotification(ctx context.Context, n Notification) NotificationStatus {

	start := time.Now()
	status := NotificationStatus{Container: n.Container, ObjectId: n.ObjectId}
	logger := log.WithFields(log.Fields{"bucket": n.Container, "key": n.ObjectId, "table": imp.tableName})

	err := imp.importObject(ctx, n, &status, logger)
	if err != nil {
		status.Error = err.Error()
		logger.WithFields(log.Fields{"error": err}).Errorf("error processing %s from %s", n.ObjectId, n.Container)
		return status
	}

	duration := time.Since(start)
	if status.Failed != 0 {
		status.Error = fmt.Sprintf("%d of %d records failed to write", status.Failed, status.Records)
		logger.Warnf("imported %s from %s to %s with errors: %d written, %d failed (%0.2f seconds)",
			n.ObjectId, n.Container, imp.tableName, status.Written, status.Failed, duration.Seconds())
		return status
	}

	logger.Infof("successfully imported %s from %s to %s: %d records (%0.2f seconds)",
		n.ObjectId, n.Container, imp.tableName, status.Written, duration.Seconds())
	return status
}

//
// fetch, validate and write one object. Anything returned is a failure of the object as a whole,
// individual record failures are counted in the status
//
func (imp *Importer) importObject(ctx context.Context, n Notification, status *NotificationStatus, logger *log.Entry) error {

	raw, err := imp.blobs.Get(ctx, n.Container, n.ObjectId)
	if err != nil {
		return err
	}

	loader, err := NewRecordLoader(fmt.Sprintf("s3://%s/%s", n.Container, n.ObjectId), raw)
	if err != nil {
		return err
	}
	defer loader.Done()

	// make sure the whole document is good before we write anything
	err = loader.Validate()
	if err != nil {
		return err
	}

	rec, err := loader.First()
	for err == nil {

		// the invocation is going away, what is written stays written
		if ctx.Err() != nil {
			return fmt.Errorf("import interrupted after %d records: %w", status.Records, ctx.Err())
		}

		status.Records++
		e := imp.table.Upsert(ctx, normalizeRecord(rec))
		if e != nil {
			status.Failed++
			logger.WithFields(log.Fields{"record": status.Records, "error": e}).Error("record write failed")
		} else {
			status.Written++
		}

		rec, err = loader.Next()
	}

	// this is expected, anything else is not since we already validated
	if err != io.EOF {
		return err
	}

	return nil
}

//
// end of file
//
