package store

import (
	"io"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/pkg/errors"

	"github.com/isybelharto/Zilliqa/config"
)

// PebbleDB wraps *pebble.DB, following node/store/pebble.go's PebbleDB
// shape but trimmed to the Get/Set/NewIter surface BlockStore and
// BlockLinkChain need.
type PebbleDB struct {
	db *pebble.DB
}

func NewPebbleDB(cfg config.DBConfig) (*PebbleDB, error) {
	opts := &pebble.Options{}
	path := cfg.Path
	if cfg.InMemoryDONOTUSE {
		opts.FS = vfs.NewMem()
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrap(err, "open pebble db")
	}

	return &PebbleDB{db: db}, nil
}

func (p *PebbleDB) Get(key []byte) ([]byte, io.Closer, error) {
	return p.db.Get(key)
}

// Set writes with Sync: true, giving BlockStore its read-your-writes
// durability guarantee the moment this call returns.
func (p *PebbleDB) Set(key, value []byte) error {
	return p.db.Set(key, value, &pebble.WriteOptions{Sync: true})
}

func (p *PebbleDB) NewIter(lowerBound, upperBound []byte) (Iterator, error) {
	return p.db.NewIter(&pebble.IterOptions{
		LowerBound: lowerBound,
		UpperBound: upperBound,
	})
}

func (p *PebbleDB) Close() error {
	return p.db.Close()
}

var _ KVDB = (*PebbleDB)(nil)
