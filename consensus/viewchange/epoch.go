package viewchange

import "sync"

// InMemoryEpochTracker is the default types.EpochTracker: it remembers the
// last committed (ds_epoch, tx_epoch) pair in memory, standing in for the
// source mediator's CheckWhetherBlockIsLatest state (spec.md §4.1 step 5,
// §9 Open Question 3). CurrentEpoch tracks the ViewChangeEpoch actually
// carried by the last committed block, not a count of commits this process
// has performed, so a node started at a non-zero epoch (NewInMemoryEpochTrackerAt)
// stays in lockstep with the chain's real epoch numbering. Durable epoch
// recovery on restart is out of scope here; a real deployment would seed
// startEpoch from BlockLinkChain's latest entry, once that store also
// records tx_epoch alongside ds_epoch.
type InMemoryEpochTracker struct {
	mu           sync.Mutex
	current      uint64
	lastDSEpoch  uint64
	lastTxEpoch  uint64
	hasCommitted bool
}

// NewInMemoryEpochTracker starts the tracker expecting epoch 0 first, for a
// fresh chain with no prior view-change history.
func NewInMemoryEpochTracker() *InMemoryEpochTracker {
	return NewInMemoryEpochTrackerAt(0)
}

// NewInMemoryEpochTrackerAt starts the tracker expecting startEpoch as the
// next block's ViewChangeEpoch, letting a node rejoin mid-chain instead of
// only ever accepting epoch 0 first.
func NewInMemoryEpochTrackerAt(startEpoch uint64) *InMemoryEpochTracker {
	return &InMemoryEpochTracker{current: startEpoch}
}

func (t *InMemoryEpochTracker) CurrentEpoch() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

func (t *InMemoryEpochTracker) IsLatest(dsEpoch, txEpoch uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.hasCommitted {
		return true
	}
	return dsEpoch > t.lastDSEpoch || (dsEpoch == t.lastDSEpoch && txEpoch > t.lastTxEpoch)
}

// Advance records (dsEpoch, txEpoch) as the new latest committed pair and
// sets the next expected ViewChangeEpoch to txEpoch+1, derived from the
// block that was just committed rather than from how many blocks this
// process has committed in total.
func (t *InMemoryEpochTracker) Advance(dsEpoch, txEpoch uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastDSEpoch = dsEpoch
	t.lastTxEpoch = txEpoch
	t.current = txEpoch + 1
	t.hasCommitted = true
}
