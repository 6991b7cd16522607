package fanout

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSelect_NoAdjustmentNeeded(t *testing.T) {
	sel := Select([]byte("frame"), 10, 4, 2, zap.NewNop())
	require.Equal(t, 10, sel.ClusterSize)
	require.Equal(t, 2, sel.ChildClusters)
}

func TestSelect_AdjustsUpToDSElectionPlusOne(t *testing.T) {
	sel := Select([]byte("frame"), 3, 4, 2, zap.NewNop())
	require.Equal(t, 5, sel.ClusterSize)
}

func TestSelect_ExactBoundaryAdjusts(t *testing.T) {
	sel := Select([]byte("frame"), 4, 4, 2, zap.NewNop())
	require.Equal(t, 5, sel.ClusterSize)
}
