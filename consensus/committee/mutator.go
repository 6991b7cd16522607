package committee

import (
	"go.uber.org/zap"

	"github.com/isybelharto/Zilliqa/types"
)

// Mutator applies a VC block's faulty-leader list to a DSCommittee
// (spec.md §4.3), grounded on
// Node::UpdateDSCommiteeCompositionAfterVC/UpdateRetrieveDSCommiteeCompositionAfterVC
// in original_source/src/libNode/ViewChangeBlockProcessing.cpp.
type Mutator struct {
	SelfPubKey types.PubKey
	GuardMode  bool
	Logger     *zap.Logger
}

func NewMutator(selfPubKey types.PubKey, guardMode bool, logger *zap.Logger) *Mutator {
	return &Mutator{SelfPubKey: selfPubKey, GuardMode: guardMode, Logger: logger}
}

// Apply moves each faulty leader in faultyLeaders, in order, to the tail of
// dsComm. If the entry's pubkey is this node's own and its peer is the zero
// sentinel, the self-representation convention (spec.md §4.3, §9) is used
// to locate the pair instead of an exact match.
//
// If a faulty leader cannot be located, the source logs a fatal-sounding
// warning but continues, still appending it to the tail (§9 Open Question
// 2). This implementation matches that soft-fail behavior rather than
// hard-aborting: DESIGN.md records this as a deliberate compatibility
// decision, not an oversight.
func (m *Mutator) Apply(faultyLeaders []types.FaultyLeader, dsComm types.DSCommittee) {
	if m.GuardMode {
		if m.Logger != nil {
			m.Logger.Info("guard mode active, skipping committee mutation")
		}
		return
	}

	for _, fl := range faultyLeaders {
		var idx int
		if fl.PubKey.Equal(m.SelfPubKey) && fl.Peer.IsZero() {
			idx = dsComm.IndexOf(types.CommitteeMember{PubKey: fl.PubKey, Peer: types.ZeroPeer})
		} else {
			idx = dsComm.IndexOf(types.CommitteeMember{PubKey: fl.PubKey, Peer: fl.Peer})
		}

		if idx == -1 {
			if m.Logger != nil {
				m.Logger.Warn(
					"FATAL Cannot find the ds leader to eject",
					zap.String("pubkey", fl.PubKey.String()),
					zap.String("peer", fl.Peer.String()),
				)
			}
		} else {
			dsComm.RemoveAt(idx)
		}

		dsComm.Append(types.CommitteeMember{PubKey: fl.PubKey, Peer: fl.Peer})
	}
}

// ApplyForRetrieval is the cold-recovery variant used when reconstructing
// committee state from persistence: matching is by pubkey only, since the
// peer field may have been the zero sentinel when the block was originally
// produced and is not trusted at retrieval time (spec.md §4.3).
func (m *Mutator) ApplyForRetrieval(faultyLeaders []types.FaultyLeader, dsComm types.DSCommittee) {
	if m.GuardMode {
		if m.Logger != nil {
			m.Logger.Info("guard mode active, skipping committee retrieval mutation")
		}
		return
	}

	for _, fl := range faultyLeaders {
		idx := dsComm.IndexOfPubKey(fl.PubKey)

		if idx == -1 {
			if m.Logger != nil {
				m.Logger.Warn(
					"FATAL Cannot find the ds leader to eject",
					zap.String("pubkey", fl.PubKey.String()),
				)
			}
		} else {
			dsComm.RemoveAt(idx)
		}

		dsComm.Append(types.CommitteeMember{PubKey: fl.PubKey, Peer: fl.Peer})
	}
}
