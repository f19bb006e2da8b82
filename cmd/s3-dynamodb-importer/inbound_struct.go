package main

// this describes the structure of the event received from S3

type Events struct {
	Records []S3EventRecord `json:"Records"`
}

type S3EventRecord struct {
	EventName string   `json:"eventName"`
	S3        S3Record `json:"s3"`
}

type S3Record struct {
	Bucket BucketRecord `json:"bucket"`
	Object ObjectRecord `json:"object"`
}

type BucketRecord struct {
	Name string `json:"name"`
}

type ObjectRecord struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// Notification is a single "object created" event, reduced to what we need to locate the object
type Notification struct {
	EventKind string
	Container string
	ObjectId  string
}

// and what we hand back to whoever invoked us

type Response struct {
	StatusCode    int                  `json:"statusCode"`
	Body          string               `json:"body"`
	Notifications []NotificationStatus `json:"notifications,omitempty"`
}

type NotificationStatus struct {
	Container string `json:"container"`
	ObjectId  string `json:"objectId"`
	Records   int    `json:"records"`
	Written   int    `json:"written"`
	Failed    int    `json:"failed"`
	Error     string `json:"error,omitempty"`
}

//
// end of file
//
