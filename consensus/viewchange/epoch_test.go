package viewchange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryEpochTracker_FirstBlockIsAlwaysLatest(t *testing.T) {
	tr := NewInMemoryEpochTracker()
	require.True(t, tr.IsLatest(0, 0))
}

func TestInMemoryEpochTracker_AdvanceThenStale(t *testing.T) {
	tr := NewInMemoryEpochTracker()
	tr.Advance(1, 7)

	require.False(t, tr.IsLatest(1, 7))
	require.False(t, tr.IsLatest(1, 6))
	require.True(t, tr.IsLatest(1, 8))
	require.True(t, tr.IsLatest(2, 0))
}

func TestInMemoryEpochTracker_CurrentEpochIncrementsOnAdvance(t *testing.T) {
	tr := NewInMemoryEpochTracker()
	require.Equal(t, uint64(0), tr.CurrentEpoch())
	tr.Advance(1, 0)
	require.Equal(t, uint64(1), tr.CurrentEpoch())
}

// TestInMemoryEpochTracker_CurrentEpochFollowsCommittedTxEpoch checks that
// CurrentEpoch tracks the ViewChangeEpoch actually carried by the last
// committed block (txEpoch+1), not a count of Advance calls: a block whose
// ViewChangeEpoch jumps ahead (as a real chain's epoch number would after
// events this tracker never observes) must be reflected immediately, and a
// second Advance with the same txEpoch again must not double-count.
func TestInMemoryEpochTracker_CurrentEpochFollowsCommittedTxEpoch(t *testing.T) {
	tr := NewInMemoryEpochTracker()
	tr.Advance(0, 41)
	require.Equal(t, uint64(42), tr.CurrentEpoch())

	tr.Advance(0, 41)
	require.Equal(t, uint64(42), tr.CurrentEpoch())
}

// TestNewInMemoryEpochTrackerAt_SeedsNonZeroStart checks that a tracker for
// a node rejoining mid-chain expects the seeded epoch first, rather than
// only ever accepting epoch 0 as its first block.
func TestNewInMemoryEpochTrackerAt_SeedsNonZeroStart(t *testing.T) {
	tr := NewInMemoryEpochTrackerAt(500)
	require.Equal(t, uint64(500), tr.CurrentEpoch())
	tr.Advance(3, 500)
	require.Equal(t, uint64(501), tr.CurrentEpoch())
}
