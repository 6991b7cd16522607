// Package store implements BlockStore and BlockLinkChain over
// github.com/cockroachdb/pebble, grounded on node/store/pebble.go and
// node/store/key.go.
package store

import "io"

// KVDB is the narrow key-value contract PebbleDB satisfies.
type KVDB interface {
	Get(key []byte) ([]byte, io.Closer, error)
	Set(key, value []byte) error
	NewIter(lowerBound, upperBound []byte) (Iterator, error)
	Close() error
}

// Iterator is the cursor contract a KVDB range scan returns.
type Iterator interface {
	First() bool
	Next() bool
	Prev() bool
	Last() bool
	Valid() bool
	Key() []byte
	Value() []byte
	Close() error
}
