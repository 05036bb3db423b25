// Package pebble implements db.KeyValueStore on top of cockroachdb/pebble.
package pebble

import (
	"errors"
	"testing"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/starkstream/node/db"
	"github.com/starkstream/node/utils"
)

var _ db.KeyValueStore = (*DB)(nil)

type DB struct {
	pebble   *pebble.DB
	listener db.EventListener
}

// New opens a database at the given path.
func New(path string) (*DB, error) {
	return newPebble(path, &pebble.Options{})
}

// NewMem opens a new in-memory database.
func NewMem() (*DB, error) {
	return newPebble("", &pebble.Options{
		FS: vfs.NewMem(),
	})
}

// NewMemTest opens a new in-memory database and closes it when the test ends.
func NewMemTest(t *testing.T) *DB {
	memDB, err := NewMem()
	if err != nil {
		t.Fatalf("create in-memory db: %v", err)
	}
	t.Cleanup(func() {
		if err := memDB.Close(); err != nil {
			t.Errorf("close in-memory db: %v", err)
		}
	})
	return memDB
}

func newPebble(path string, options *pebble.Options) (*DB, error) {
	pDB, err := pebble.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &DB{pebble: pDB, listener: &db.SelectiveListener{}}, nil
}

// WithListener registers an EventListener.
func (d *DB) WithListener(listener db.EventListener) *DB {
	d.listener = listener
	return d
}

func (d *DB) Has(key []byte) (bool, error) {
	err := d.Get(key, func([]byte) error { return nil })
	if errors.Is(err, db.ErrKeyNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (d *DB) Get(key []byte, cb func(value []byte) error) error {
	start := time.Now()
	value, closer, err := d.pebble.Get(key)
	d.listener.OnIO(false, time.Since(start))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return db.ErrKeyNotFound
		}
		return err
	}
	return utils.RunAndWrapOnError(closer.Close, cb(value))
}

func (d *DB) Put(key, value []byte) error {
	start := time.Now()
	err := d.pebble.Set(key, value, pebble.Sync)
	d.listener.OnIO(true, time.Since(start))
	return err
}

func (d *DB) Delete(key []byte) error {
	start := time.Now()
	err := d.pebble.Delete(key, pebble.Sync)
	d.listener.OnIO(true, time.Since(start))
	return err
}

func (d *DB) Close() error {
	return d.pebble.Close()
}
