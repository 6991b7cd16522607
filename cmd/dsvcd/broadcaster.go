package main

import (
	"context"

	"go.uber.org/zap"
)

// logBroadcaster stands in for the real network fan-out transport, which
// spec.md places out of scope ("network transport and gossip... is
// delegated to a separate transport layer"). It records the fan-out
// decision VCCore made so an operator can see what would have gone out,
// without this repository needing to depend on a concrete networking
// stack such as a libp2p transport.
type logBroadcaster struct {
	logger *zap.Logger
}

func newLogBroadcaster(logger *zap.Logger) *logBroadcaster {
	return &logBroadcaster{logger: logger}
}

func (b *logBroadcaster) Broadcast(
	_ context.Context, frame []byte, clusterSize int, childClusters int,
) error {
	b.logger.Info(
		"fan-out",
		zap.Int("frame_bytes", len(frame)),
		zap.Int("cluster_size", clusterSize),
		zap.Int("child_clusters", childClusters),
	)
	return nil
}
