package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

var DecodeError = fmt.Errorf("object content is not valid UTF-8")
var ParseError = fmt.Errorf("object content is not valid JSON")
var SchemaError = fmt.Errorf("object content is not a JSON array of records")
var LoaderNotReadyError = fmt.Errorf("loader is not positioned, call First")

// Record is a single decoded item. Values are one of string, bool, nil, json.Number,
// map[string]interface{} or []interface{}
type Record map[string]interface{}

// the RecordLoader interface
type RecordLoader interface {
	Validate() error
	First() (Record, error)
	Next() (Record, error)
	Done()
}

// this is our loader implementation
type jsonLoaderImpl struct {
	Name    string
	Raw     []byte
	decoder *json.Decoder
	done    bool
}

// the UTF-8 byte order mark, some tools like to write one
var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// and the factory
func NewRecordLoader(name string, raw []byte) (RecordLoader, error) {

	if utf8.Valid(raw) == false {
		return nil, fmt.Errorf("%w: %s", DecodeError, name)
	}

	return &jsonLoaderImpl{Name: name, Raw: bytes.TrimPrefix(raw, utf8BOM)}, nil
}

// read all the records to ensure the document is valid
func (l *jsonLoaderImpl) Validate() error {

	// get the first record and error out if bad
	_, err := l.First()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}

	// read all the records and bail on the first failure except EOF
	for {
		_, err = l.Next()
		if err != nil {
			// are we done
			if err == io.EOF {
				break
			}
			return err
		}
	}

	// everything is OK
	return nil
}

func (l *jsonLoaderImpl) First() (Record, error) {

	// go to the start of the document
	l.decoder = json.NewDecoder(bytes.NewReader(l.Raw))
	// numbers are kept as their source text, never as float64
	l.decoder.UseNumber()
	l.done = false

	tok, err := l.decoder.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ParseError, l.Name, describeEOF(err))
	}

	if delim, ok := tok.(json.Delim); ok == false || delim != '[' {
		return nil, fmt.Errorf("%w: %s (top level value is %s)", SchemaError, l.Name, describeToken(tok))
	}

	return l.Next()
}

func (l *jsonLoaderImpl) Next() (Record, error) {

	if l.decoder == nil {
		return nil, LoaderNotReadyError
	}

	if l.done == true {
		return nil, io.EOF
	}

	if l.decoder.More() == false {
		return nil, l.finish()
	}

	var value interface{}
	err := l.decoder.Decode(&value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ParseError, l.Name, describeEOF(err))
	}

	item, ok := value.(map[string]interface{})
	if ok == false {
		return nil, fmt.Errorf("%w: %s (array element is %s)", SchemaError, l.Name, describeValue(value))
	}

	return Record(item), nil
}

func (l *jsonLoaderImpl) Done() {
	l.decoder = nil
	l.Raw = nil
}

//
// consume the closing bracket and make sure nothing follows it. Returns io.EOF when all is well
//
func (l *jsonLoaderImpl) finish() error {

	tok, err := l.decoder.Token()
	if err != nil {
		return fmt.Errorf("%w: %s (%s)", ParseError, l.Name, describeEOF(err))
	}
	if delim, ok := tok.(json.Delim); ok == false || delim != ']' {
		return fmt.Errorf("%w: %s (unexpected %s)", ParseError, l.Name, describeToken(tok))
	}

	tok, err = l.decoder.Token()
	if err != io.EOF {
		if err != nil {
			return fmt.Errorf("%w: %s (%s)", ParseError, l.Name, err.Error())
		}
		return fmt.Errorf("%w: %s (trailing data after array: %s)", ParseError, l.Name, describeToken(tok))
	}

	l.done = true
	return io.EOF
}

func describeEOF(err error) string {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return "unexpected end of document"
	}
	return err.Error()
}

func describeToken(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			return "an object"
		}
		return fmt.Sprintf("'%s'", t.String())
	default:
		return describeValue(tok)
	}
}

func describeValue(value interface{}) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case []interface{}:
		return "an array"
	case map[string]interface{}:
		return "an object"
	}
	return fmt.Sprintf("%T", value)
}

//
// end of file
//
