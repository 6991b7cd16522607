package store

import (
	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"github.com/isybelharto/Zilliqa/types"
)

// PebbleBlockStore implements types.BlockStore. PutVCBlock's Sync: true
// write (via PebbleDB.Set) is what gives GetVCBlock its read-your-writes
// guarantee — no cache layer sits in front of pebble here.
type PebbleBlockStore struct {
	db KVDB
}

func NewPebbleBlockStore(db KVDB) *PebbleBlockStore {
	return &PebbleBlockStore{db: db}
}

var _ types.BlockStore = (*PebbleBlockStore)(nil)

func (s *PebbleBlockStore) GetVCBlock(hash types.Hash256) ([]byte, bool, error) {
	value, closer, err := s.db.Get(vcBlockKey(hash))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "get vc block")
	}
	defer closer.Close()

	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

// PutVCBlock rejects an attempt to overwrite an existing record; the
// duplicate gate in the view-change pipeline runs before this is ever
// called, but PutVCBlock stays defensive since types.BlockStore is a
// narrow contract other callers could reuse directly.
func (s *PebbleBlockStore) PutVCBlock(hash types.Hash256, data []byte) error {
	_, exists, err := s.GetVCBlock(hash)
	if err != nil {
		return err
	}
	if exists {
		return errors.Errorf("vc block %s already stored", hash)
	}

	if err := s.db.Set(vcBlockKey(hash), data); err != nil {
		return errors.Wrap(err, "put vc block")
	}
	return nil
}
