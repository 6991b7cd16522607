// Package viewchange implements VCCore: the fourteen-gate validation and
// apply pipeline for inbound view-change blocks. Grounded on the
// reference node's practice of bundling shared, lock-guarded state into
// one explicit struct passed to its consensus engines (e.g.
// AppConsensusEngine's fields in node/consensus/app), replacing the
// distilled spec's singleton mediator with an explicit context.
package viewchange

import (
	"sync"

	"github.com/isybelharto/Zilliqa/config"
	"github.com/isybelharto/Zilliqa/types"
)

// ConsensusContext bundles the state ProcessVCBlock's fourteen gates
// read and mutate. CommitteeMu is the single mutex named in spec.md §5:
// it is acquired once, spanning the committee-hash check through
// committee mutation (the persistence write included), and released
// before fan-out.
type ConsensusContext struct {
	CommitteeMu sync.Mutex

	Committee types.DSCommittee
	LinkChain types.BlockLinkChain
	Store     types.BlockStore
	Epochs    types.EpochTracker

	SelfPubKey types.PubKey

	Config config.ConsensusConfig
}
