package main

import (
	"encoding/json"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
)

// the only S3 notifications we care about
var objectCreatedPrefix = "ObjectCreated"

//
// turn an inbound S3 event into the ordered list of object created notifications. Anything else
// (removals, restores, test events) is ignored
//
func selectNotifications(events Events) []Notification {

	notifications := make([]Notification, 0, len(events.Records))
	for _, r := range events.Records {

		if strings.HasPrefix(r.EventName, objectCreatedPrefix) == false {
			log.Debugf("ignoring %s notification for %s/%s", r.EventName, r.S3.Bucket.Name, r.S3.Object.Key)
			continue
		}

		notifications = append(notifications, Notification{
			EventKind: r.EventName,
			Container: r.S3.Bucket.Name,
			ObjectId:  unescapeKey(r.S3.Object.Key),
		})
	}
	return notifications
}

//
// object keys arrive URL encoded (spaces become '+'), if we cannot decode one we use it as is
// and let the fetch decide
//
func unescapeKey(key string) string {

	unescaped, err := url.QueryUnescape(key)
	if err != nil {
		log.Printf("WARNING: unable to unescape object key %s (%s), using it as is", key, err.Error())
		return key
	}
	return unescaped
}

//
// turn a raw JSON payload (a queue message or a file) into an S3 event
//
func decodeS3Event(payload []byte) (Events, error) {

	events := Events{}
	err := json.Unmarshal(payload, &events)
	if err != nil {
		log.Printf("ERROR: json unmarshal: %s", err)
		return Events{}, err
	}
	return events, nil
}

//
// end of file
//
