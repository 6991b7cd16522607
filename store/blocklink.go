package store

import (
	"encoding/binary"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"

	"github.com/isybelharto/Zilliqa/types"
)

// PebbleBlockLinkChain implements types.BlockLinkChain as an append-only
// log keyed by big-endian index, grounded on the frame-number keyed
// iteration in node/store/clock.go. Index contiguity is enforced by Add:
// a link can only ever be appended one past the latest index found on
// disk.
type PebbleBlockLinkChain struct {
	mu sync.Mutex
	db KVDB
}

func NewPebbleBlockLinkChain(db KVDB) *PebbleBlockLinkChain {
	return &PebbleBlockLinkChain{db: db}
}

var _ types.BlockLinkChain = (*PebbleBlockLinkChain)(nil)

func encodeBlockLink(dsEpoch uint64, blockType types.BlockType, hash types.Hash256) []byte {
	buf := make([]byte, 0, 8+1+32)
	buf = binary.BigEndian.AppendUint64(buf, dsEpoch)
	buf = append(buf, byte(blockType))
	buf = append(buf, hash[:]...)
	return buf
}

func decodeBlockLink(index uint64, data []byte) (types.BlockLink, error) {
	if len(data) != 8+1+32 {
		return types.BlockLink{}, errors.Errorf("block link record has bad length %d", len(data))
	}

	var hash types.Hash256
	copy(hash[:], data[9:])

	return types.BlockLink{
		Index:     index,
		DSEpoch:   binary.BigEndian.Uint64(data[:8]),
		BlockType: types.BlockType(data[8]),
		Hash:      hash,
	}, nil
}

// LatestIndex returns the highest index appended so far, or (0, nil)
// with no error when the chain is empty — callers that need to tell the
// two cases apart must call IsEmpty first.
func (c *PebbleBlockLinkChain) LatestIndex() (uint64, error) {
	_, upper := linkChainPrefixBounds()
	lower, _ := linkChainPrefixBounds()

	iter, err := c.db.NewIter(lower, upper)
	if err != nil {
		return 0, errors.Wrap(err, "latest index")
	}
	defer iter.Close()

	if !iter.Last() {
		return 0, nil
	}

	key := iter.Key()
	if len(key) != 1+8 {
		return 0, errors.Errorf("link chain key has bad length %d", len(key))
	}

	return binary.BigEndian.Uint64(key[1:]), nil
}

// Add appends a link at index, requiring strict contiguity: index must
// be exactly one past the chain's current latest index (or zero for the
// first link ever appended).
func (c *PebbleBlockLinkChain) Add(
	index uint64,
	dsEpoch uint64,
	blockType types.BlockType,
	hash types.Hash256,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	latest, err := c.LatestIndex()
	if err != nil {
		return err
	}

	empty, err := c.IsEmpty()
	if err != nil {
		return err
	}

	wantIndex := latest + 1
	if empty {
		wantIndex = 0
	}
	if index != wantIndex {
		return errors.Errorf(
			"block link chain: expected next index %d, got %d", wantIndex, index,
		)
	}

	if err := c.db.Set(linkChainKey(index), encodeBlockLink(dsEpoch, blockType, hash)); err != nil {
		return errors.Wrap(err, "add block link")
	}
	return nil
}

// IsEmpty reports whether the chain has no entries yet, resolving the
// ambiguity LatestIndex's zero value otherwise leaves for an empty chain.
func (c *PebbleBlockLinkChain) IsEmpty() (bool, error) {
	lower, upper := linkChainPrefixBounds()
	iter, err := c.db.NewIter(lower, upper)
	if err != nil {
		return false, errors.Wrap(err, "check empty")
	}
	defer iter.Close()
	return !iter.First(), nil
}

// Get retrieves a previously appended link by index.
func (c *PebbleBlockLinkChain) Get(index uint64) (types.BlockLink, bool, error) {
	value, closer, err := c.db.Get(linkChainKey(index))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return types.BlockLink{}, false, nil
		}
		return types.BlockLink{}, false, errors.Wrap(err, "get block link")
	}
	defer closer.Close()

	link, err := decodeBlockLink(index, value)
	if err != nil {
		return types.BlockLink{}, false, err
	}
	return link, true, nil
}
