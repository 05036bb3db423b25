package db

import (
	"bytes"
	"encoding/binary"
)

// Bucket prefixes keys to separate groups of records sharing one keyspace.
type Bucket byte

const (
	HeadCursor   Bucket = 0 // most recently ingested cursor
	Blocks       Bucket = 1 // encoded blocks by number
	StateUpdates Bucket = 2 // encoded state updates by block number
	Receipts     Bucket = 3 // encoded receipts by transaction hash
)

// Key flattens the bucket prefix and a series of byte arrays into a single
// database key.
func (b Bucket) Key(suffix ...[]byte) []byte {
	return append([]byte{byte(b)}, bytes.Join(suffix, nil)...)
}

// NumericKey builds a bucket key from a block number, big-endian so that
// lexicographic key order matches block order.
func (b Bucket) NumericKey(number uint64) []byte {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], number)
	return b.Key(n[:])
}
