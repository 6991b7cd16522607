package viewchange

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/isybelharto/Zilliqa/consensus/committee"
	"github.com/isybelharto/Zilliqa/consensus/cosig"
	"github.com/isybelharto/Zilliqa/consensus/fanout"
	"github.com/isybelharto/Zilliqa/types"
	"github.com/isybelharto/Zilliqa/wire"
)

// Core runs the fourteen-gate view-change validation and apply pipeline
// of spec.md §4.1. It is intentionally the only place in the module that
// sequences every other component (cosig.Verifier, committee.Mutator,
// fanout.Select) against one inbound frame.
type Core struct {
	Ctx        *ConsensusContext
	CoSig      *cosig.Verifier
	Mutator    *committee.Mutator
	Broadcaster types.Broadcaster
	Logger     *zap.Logger

	// LookupNodeMode and BroadcastTreebasedClusterMode gate step 14, matching
	// the fan-out preconditions in spec.md §4.1 step 14 and §6.
	LookupNodeMode                bool
	BroadcastTreebasedClusterMode bool
}

func NewCore(
	ctx *ConsensusContext,
	coSig *cosig.Verifier,
	mutator *committee.Mutator,
	broadcaster types.Broadcaster,
	logger *zap.Logger,
) *Core {
	return &Core{
		Ctx:         ctx,
		CoSig:       coSig,
		Mutator:     mutator,
		Broadcaster: broadcaster,
		Logger:      logger,
	}
}

// ProcessVCBlock implements spec.md §4.1's sequential contract. Any gate
// failure aborts with the listed error; nothing is persisted and no
// committee mutation occurs before step 11.
func (c *Core) ProcessVCBlock(
	rawCtx context.Context,
	raw []byte,
	offset int,
	from types.Peer,
) error {
	// 1. Decode.
	block, err := wire.DecodeBlock(raw, offset)
	if err != nil {
		return types.NewVCError(types.ErrDecode, err)
	}
	log := c.Logger.With(
		zap.String("block_hash", block.BlockHash.String()),
		zap.String("from", from.String()),
		zap.Uint64("epoch", c.Ctx.Epochs.CurrentEpoch()),
	)

	// 2. Version.
	if block.Header.Version != c.Ctx.Config.VCBlockVersion {
		log.Warn("view change gate failed", zap.String("gate", "Version"))
		return types.NewVCError(types.ErrVersion, nil)
	}

	// 3. State-tag gate.
	if types.IsDSBlockCoupledState(block.Header.ViewChangeState) {
		log.Warn("view change gate failed", zap.String("gate", "PrecedesDSBlock"))
		return types.NewVCError(types.ErrPrecedesDSBlock, nil)
	}

	// 4. Epoch check.
	if block.Header.ViewChangeEpoch != c.Ctx.Epochs.CurrentEpoch() {
		log.Warn("view change gate failed", zap.String("gate", "WrongEpoch"))
		return types.NewVCError(types.ErrWrongEpoch, nil)
	}

	// 5. Freshness.
	if !c.Ctx.Epochs.IsLatest(block.Header.ViewChangeDSEpoch, block.Header.ViewChangeEpoch) {
		log.Debug("view change gate failed", zap.String("gate", "Stale"))
		return types.NewVCError(types.ErrStale, nil)
	}

	// 6. Self-hash.
	if wire.ComputeMyHash(block.Header) != block.BlockHash {
		log.Warn("view change gate failed", zap.String("gate", "HashMismatch"))
		return types.NewVCError(types.ErrHashMismatch, nil)
	}

	// 7. Duplicate.
	if _, found, err := c.Ctx.Store.GetVCBlock(block.BlockHash); err != nil {
		return types.NewVCError(types.ErrStorage, err)
	} else if found {
		log.Debug("view change block already seen", zap.String("gate", "Duplicate"))
		return types.NewVCError(types.ErrDuplicate, nil)
	}

	// 8. Timestamp.
	tolerance := c.Ctx.Config.TimestampTolerance()
	if !verifyTimestamp(block.Timestamp, tolerance) {
		log.Warn("view change gate failed", zap.String("gate", "BadTimestamp"))
		return types.NewVCError(types.ErrBadTimestamp, nil)
	}

	// 9-13 run under the committee lock: committee-hash check through
	// mutation must be atomic (spec.md §5). The lock is released before the
	// optional fan-out in step 14.
	c.Ctx.CommitteeMu.Lock()
	locked := true
	defer func() {
		if locked {
			c.Ctx.CommitteeMu.Unlock()
		}
	}()

	// 9. Committee-hash.
	if c.Ctx.Committee.Hash() != block.Header.CommitteeHash {
		log.Warn("view change gate failed", zap.String("gate", "CommitteeHashMismatch"))
		return types.NewVCError(types.ErrCommitteeHashMismatch, nil)
	}

	// 10. Co-signature.
	if err := c.CoSig.Verify(block, c.Ctx.Committee.Members()); err != nil {
		log.Warn("view change gate failed", zap.String("gate", "BadSignature"), zap.Error(err))
		return types.NewVCError(types.ErrBadSignature, err)
	}

	// 11. Link.
	empty, err := c.Ctx.LinkChain.IsEmpty()
	if err != nil {
		return types.NewVCError(types.ErrLinkChain, err)
	}
	nextIndex := uint64(0)
	if !empty {
		latest, err := c.Ctx.LinkChain.LatestIndex()
		if err != nil {
			return types.NewVCError(types.ErrLinkChain, err)
		}
		nextIndex = latest + 1
	}
	if err := c.Ctx.LinkChain.Add(
		nextIndex, block.Header.ViewChangeDSEpoch, types.BlockTypeVC, block.BlockHash,
	); err != nil {
		return types.NewVCError(types.ErrLinkChain, err)
	}

	// 12. Persist. An I/O failure here is not rolled back: the link appended
	// in step 11 stays in place, matching source behavior (spec.md §4.1
	// step 12, §9).
	if err := c.Ctx.Store.PutVCBlock(block.BlockHash, wire.EncodeBlock(block)); err != nil {
		return types.NewVCError(types.ErrStorage, err)
	}

	c.Ctx.Epochs.Advance(block.Header.ViewChangeDSEpoch, block.Header.ViewChangeEpoch)

	// 13. Mutate committee.
	c.Mutator.Apply(block.Header.FaultyLeaders, c.Ctx.Committee)
	c.Ctx.CommitteeMu.Unlock()
	locked = false

	// 14. Fan-out (optional). Only shard nodes forward; lookup nodes never do.
	if !c.LookupNodeMode && c.BroadcastTreebasedClusterMode && c.Broadcaster != nil {
		frame := wire.BuildOutboundFrame(block)
		sel := fanout.Select(
			frame,
			c.Ctx.Config.NumForwardedBlockReceiversPerShard,
			c.Ctx.Config.NumDSElection,
			c.Ctx.Config.NumOfTreebasedChildClusters,
			log,
		)
		if err := c.Broadcaster.Broadcast(
			rawCtx, sel.Frame, sel.ClusterSize, sel.ChildClusters,
		); err != nil {
			log.Warn("fan-out broadcast failed", zap.Error(err))
		}
	}

	return nil
}

// verifyTimestamp reports whether ts lies within [now-tolerance,
// now+tolerance], per spec.md §4.1 step 8.
func verifyTimestamp(ts uint64, tolerance time.Duration) bool {
	now := time.Now().Unix()
	lower := now - int64(tolerance/time.Second)
	upper := now + int64(tolerance/time.Second)
	t := int64(ts)
	return t >= lower && t <= upper
}
