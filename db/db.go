// Package db abstracts the persistent key-value store the node keeps its
// ingested blocks and stream cursor in.
package db

import (
	"errors"
	"io"
)

var ErrKeyNotFound = errors.New("key not found")

// KeyValueReader reads from the data store.
type KeyValueReader interface {
	// Has checks if a key exists in the data store.
	Has(key []byte) (bool, error)
	// Get retrieves a value for a given key if it exists. The value passed to
	// cb is only valid for the duration of the call.
	Get(key []byte, cb func(value []byte) error) error
}

// KeyValueWriter writes to the data store.
type KeyValueWriter interface {
	// Put inserts a given value into the data store.
	Put(key, value []byte) error
	// Delete removes a given key from the data store.
	Delete(key []byte) error
}

// KeyValueStore is the full capability set a database backend provides.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
	io.Closer
}
