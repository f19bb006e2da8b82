package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

var WriteError = fmt.Errorf("record write failed")

// empty strings and collections are stored as they are, not as NULL
var itemEncoder = dynamodbattribute.NewEncoder(func(e *dynamodbattribute.Encoder) {
	e.NullEmptyString = false
	e.EnableEmptyCollections = true
})

// the destination table interface
type Table interface {
	Upsert(ctx context.Context, record Record) error
}

// this is our DynamoDB implementation
type dynamoTable struct {
	client    dynamodbiface.DynamoDBAPI
	tableName string
}

// and the factory
func NewDynamoTable(client dynamodbiface.DynamoDBAPI, tableName string) Table {
	return &dynamoTable{client: client, tableName: tableName}
}

//
// write or replace a single item. The key attributes are whatever the table declares, we
// leave it to DynamoDB to reject an item that does not carry them
//
func (t *dynamoTable) Upsert(ctx context.Context, record Record) error {

	// a float here means a number escaped normalization and would lose precision
	if path, found := findFloat(record, ""); found == true {
		return fmt.Errorf("%w: %s (attribute %s holds a floating point value)", WriteError, t.tableName, path)
	}

	av, err := itemEncoder.Encode(record)
	if err != nil {
		return fmt.Errorf("%w: %s (marshal: %s)", WriteError, t.tableName, err.Error())
	}
	item := av.M

	_, err = t.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(t.tableName),
		Item:      item,
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			return fmt.Errorf("%w: %s (%s: %s)", WriteError, t.tableName, aerr.Code(), aerr.Message())
		}
		return fmt.Errorf("%w: %s (%s)", WriteError, t.tableName, err.Error())
	}

	return nil
}

func findFloat(value interface{}, path string) (string, bool) {

	switch v := value.(type) {
	case float32, float64:
		return path, true

	case Record:
		return findFloat(map[string]interface{}(v), path)

	case map[string]interface{}:
		for k, e := range v {
			name := k
			if path != "" {
				name = path + "." + k
			}
			if p, found := findFloat(e, name); found == true {
				return p, true
			}
		}

	case []interface{}:
		for ix, e := range v {
			if p, found := findFloat(e, fmt.Sprintf("%s[%d]", path, ix)); found == true {
				return p, true
			}
		}
	}
	return "", false
}

//
// end of file
//
