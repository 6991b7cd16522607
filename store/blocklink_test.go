package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isybelharto/Zilliqa/types"
)

func TestBlockLinkChain_AppendAndLatestIndex(t *testing.T) {
	db := openTestDB(t)
	chain := NewPebbleBlockLinkChain(db)

	latest, err := chain.LatestIndex()
	require.NoError(t, err)
	require.Equal(t, uint64(0), latest)

	var h0, h1 types.Hash256
	h0[0] = 1
	h1[0] = 2

	require.NoError(t, chain.Add(0, 5, types.BlockTypeVC, h0))
	require.NoError(t, chain.Add(1, 5, types.BlockTypeVC, h1))

	latest, err = chain.LatestIndex()
	require.NoError(t, err)
	require.Equal(t, uint64(1), latest)

	link, found, err := chain.Get(1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(5), link.DSEpoch)
	require.Equal(t, h1, link.Hash)
}

func TestBlockLinkChain_RejectsNonContiguousIndex(t *testing.T) {
	db := openTestDB(t)
	chain := NewPebbleBlockLinkChain(db)

	var h types.Hash256
	err := chain.Add(1, 0, types.BlockTypeVC, h)
	require.Error(t, err)

	require.NoError(t, chain.Add(0, 0, types.BlockTypeVC, h))
	err = chain.Add(2, 0, types.BlockTypeVC, h)
	require.Error(t, err)
}
