package types

import "context"

// BlockLinkChain is the append-only index linking block hashes to DS epochs
// and block types (spec.md §3, §4.4). Implementations must serialize
// concurrent appenders and enforce contiguous, strictly increasing indices.
type BlockLinkChain interface {
	// LatestIndex returns the highest index appended so far. Its result is
	// ambiguous on an empty chain (0 is both "no entries yet" and a real
	// first index), so callers that need to distinguish the two must call
	// IsEmpty first rather than trust LatestIndex alone.
	LatestIndex() (uint64, error)
	// IsEmpty reports whether the chain has no entries yet, resolving the
	// ambiguity LatestIndex leaves on its own.
	IsEmpty() (bool, error)
	Add(index uint64, dsEpoch uint64, blockType BlockType, hash Hash256) error
}

// BlockStore is the durable key->bytes map for VC blocks (spec.md §3, §4.5).
// Reads used for duplicate detection must observe all prior successful
// writes made from within the same process.
type BlockStore interface {
	GetVCBlock(hash Hash256) ([]byte, bool, error)
	PutVCBlock(hash Hash256, data []byte) error
}

// Broadcaster is the fan-out contract VCCore hands freshly-encoded frames to
// (spec.md §1 "Fan-out glue" and §4.7). Network transport itself is out of
// scope for this core; only frame construction and cluster-size selection
// are implemented here.
type Broadcaster interface {
	Broadcast(
		ctx context.Context,
		frame []byte,
		clusterSize int,
		childClusters int,
	) error
}

// EpochTracker exposes the mediator's notion of "latest" committed epoch,
// used by the freshness gate (spec.md §4.1 step 5). It stands in for the
// source's CheckWhetherBlockIsLatest on the mediator.
type EpochTracker interface {
	CurrentEpoch() uint64
	// IsLatest reports whether (dsEpoch, txEpoch) is strictly ahead of the
	// last committed (ds_epoch, tx_epoch) pair.
	IsLatest(dsEpoch, txEpoch uint64) bool
	// Advance records (dsEpoch, txEpoch) as the new latest, once a block has
	// been fully committed.
	Advance(dsEpoch, txEpoch uint64)
}
