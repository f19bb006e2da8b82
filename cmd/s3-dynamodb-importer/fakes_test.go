package main

import (
	"context"
	"fmt"
)

// an in-memory blob store
type memBlobStore struct {
	objects map[string][]byte
	errors  map[string]error
	calls   int
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{objects: make(map[string][]byte), errors: make(map[string]error)}
}

func (m *memBlobStore) put(container string, objectId string, content string) {
	m.objects[container+"/"+objectId] = []byte(content)
}

func (m *memBlobStore) Get(ctx context.Context, container string, objectId string) ([]byte, error) {
	m.calls++
	name := container + "/" + objectId
	if err, found := m.errors[name]; found == true {
		return nil, err
	}
	buf, found := m.objects[name]
	if found == false {
		return nil, fmt.Errorf("%w: %s", NotFoundError, name)
	}
	return buf, nil
}

// an in-memory table keyed on a single string attribute
type memTable struct {
	keyField string
	items    map[string]Record
	upserts  []Record
}

func newMemTable(keyField string) *memTable {
	return &memTable{keyField: keyField, items: make(map[string]Record)}
}

func (m *memTable) Upsert(ctx context.Context, record Record) error {
	m.upserts = append(m.upserts, record)
	key, ok := record[m.keyField].(string)
	if ok == false {
		return fmt.Errorf("%w: missing key attribute %s", WriteError, m.keyField)
	}
	m.items[key] = record
	return nil
}

func objectCreated(bucket string, key string) S3EventRecord {
	return S3EventRecord{
		EventName: "ObjectCreated:Put",
		S3: S3Record{
			Bucket: BucketRecord{Name: bucket},
			Object: ObjectRecord{Key: key},
		},
	}
}

//
// end of file
//
