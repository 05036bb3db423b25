package pebble_test

import (
	"testing"
	"time"

	"github.com/starkstream/node/db"
	"github.com/starkstream/node/db/pebble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetDelete(t *testing.T) {
	testDB := pebble.NewMemTest(t)

	key := db.Blocks.NumericKey(42)
	require.NoError(t, testDB.Put(key, []byte("value")))

	var got []byte
	require.NoError(t, testDB.Get(key, func(value []byte) error {
		got = append([]byte(nil), value...)
		return nil
	}))
	assert.Equal(t, []byte("value"), got)

	has, err := testDB.Has(key)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, testDB.Delete(key))
	has, err = testDB.Has(key)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestGetMissingKey(t *testing.T) {
	testDB := pebble.NewMemTest(t)

	err := testDB.Get([]byte("missing"), func([]byte) error { return nil })
	assert.ErrorIs(t, err, db.ErrKeyNotFound)

	has, err := testDB.Has([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, has)
}

func TestListener(t *testing.T) {
	var reads, writes int
	listener := &db.SelectiveListener{
		OnIOCb: func(write bool, _ time.Duration) {
			if write {
				writes++
			} else {
				reads++
			}
		},
	}
	testDB := pebble.NewMemTest(t).WithListener(listener)

	require.NoError(t, testDB.Put(db.HeadCursor.Key(), []byte{1}))
	require.NoError(t, testDB.Get(db.HeadCursor.Key(), func([]byte) error { return nil }))

	assert.Equal(t, 1, writes)
	assert.Equal(t, 1, reads)
}

func TestBucketKeys(t *testing.T) {
	assert.Equal(t, []byte{byte(db.Blocks), 0, 0, 0, 0, 0, 0, 0, 7}, db.Blocks.NumericKey(7))
	assert.Equal(t, []byte{byte(db.Receipts), 0xca, 0xfe}, db.Receipts.Key([]byte{0xca}, []byte{0xfe}))
	assert.Equal(t, []byte{byte(db.HeadCursor)}, db.HeadCursor.Key())
}
