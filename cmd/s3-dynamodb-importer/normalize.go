package main

import (
	"encoding/json"
)

//
// return a copy of the record with every number rewritten as its source text. DynamoDB has no
// representation for an arbitrary precision JSON number that survives the SDK marshaller so we
// store them as strings
//
func normalizeRecord(record Record) Record {

	normalized := make(Record, len(record))
	for k, v := range record {
		normalized[k] = normalizeValue(v)
	}
	return normalized
}

func normalizeValue(value interface{}) interface{} {

	switch v := value.(type) {
	case json.Number:
		return v.String()

	case Record:
		return normalizeRecord(v)

	case map[string]interface{}:
		return map[string]interface{}(normalizeRecord(Record(v)))

	case []interface{}:
		normalized := make([]interface{}, len(v))
		for ix, e := range v {
			normalized[ix] = normalizeValue(e)
		}
		return normalized
	}

	// strings, booleans and null pass through
	return value
}

//
// end of file
//
