// Package fanout implements the deterministic child-cluster sizing for
// tree-based forwarding (spec.md §4.7), grounded on
// Node::SendVCBlockToOtherShardNodes in
// original_source/src/libNode/ViewChangeBlockProcessing.cpp.
package fanout

import "go.uber.org/zap"

// Selection is the input handed to the broadcast subsystem: an
// already-encoded frame, the effective cluster size, and the configured
// child-cluster fan-in (spec.md §4.7).
type Selection struct {
	Frame           []byte
	ClusterSize     int
	ChildClusters   int
}

// Select computes the effective cluster size for fan-out: requestedSize is
// raised to numDSElection+1 if it isn't already larger, with a warning
// logged when the adjustment fires (spec.md §4.7, matching the source's
// "Why not correct the constant.xml next time" adjustment).
func Select(
	frame []byte,
	requestedSize int,
	numDSElection int,
	numChildClusters int,
	logger *zap.Logger,
) Selection {
	effective := requestedSize
	if effective <= numDSElection {
		if logger != nil {
			logger.Warn(
				"adjusting requested cluster size to exceed NUM_DS_ELECTION",
				zap.Int("requested", requestedSize),
				zap.Int("num_ds_election", numDSElection),
			)
		}
		effective = numDSElection + 1
	}

	return Selection{
		Frame:         frame,
		ClusterSize:   effective,
		ChildClusters: numChildClusters,
	}
}
