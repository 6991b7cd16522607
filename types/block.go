package types

// StateTag mirrors the DS state machine's view-change-relevant states. Only
// the subset needed to decide the DS-block-coupled gate (spec.md §4.1 step 3)
// is modeled; the full DS state machine lives outside this core (spec.md §1,
// §9 Open Question 3).
type StateTag uint8

const (
	StateNormal StateTag = iota
	StateViewChangePrecheck
	StateViewChange
	// StateWaitingDSBlock and StateDSBlockConsensus are the tags the original
	// implementation checks via IsDSBlockVCState: a VC block produced while the
	// DS is mid-consensus on (or about to propose) a DS block must be applied
	// atomically with that DS block, not on its own. See
	// ViewChangeBlockProcessing.cpp's IsDSBlockVCState guard.
	StateWaitingDSBlock
	StateDSBlockConsensus
)

// dsBlockCoupledStates is the closed set of tags that must be rejected by
// this core with PrecedesDSBlock (spec.md §4.1 step 3).
var dsBlockCoupledStates = map[StateTag]bool{
	StateWaitingDSBlock:   true,
	StateDSBlockConsensus: true,
}

// IsDSBlockCoupledState reports whether a VC block carrying this state tag
// must be handled by the DS-block pipeline instead of this core.
func IsDSBlockCoupledState(tag StateTag) bool {
	return dsBlockCoupledStates[tag]
}

// FaultyLeader is a single entry of a VCBlockHeader's ordered faulty-leader
// list: the leader's identity key and its last-known network address.
type FaultyLeader struct {
	PubKey PubKey
	Peer   Peer
}

// VCBlockHeader is the header of a view-change block, per spec.md §3.
type VCBlockHeader struct {
	Version                  uint32
	ViewChangeDSEpoch        uint64
	ViewChangeEpoch          uint64
	ViewChangeState          StateTag
	CandidateLeaderNetwork   Peer
	CandidateLeaderPubKey    PubKey
	FaultyLeaders            []FaultyLeader
	CommitteeHash            Hash256
	PrevHash                 Hash256
	MyHash                   Hash256
}

// VCBlock is a fully-formed view-change block, per spec.md §3.
type VCBlock struct {
	Header    VCBlockHeader
	CS1       Signature
	B1        BitVector
	CS2       Signature
	B2        BitVector
	Timestamp uint64
	BlockHash Hash256
}

// BlockType is a closed sum of block kinds flowing through BlockLinkChain,
// replacing the polymorphic block hierarchy of the source (spec.md §9).
type BlockType uint8

const (
	BlockTypeTX BlockType = iota
	BlockTypeDS
	BlockTypeVC
	BlockTypeMicro
	BlockTypeFinal
)

func (t BlockType) String() string {
	switch t {
	case BlockTypeTX:
		return "TX"
	case BlockTypeDS:
		return "DS"
	case BlockTypeVC:
		return "VC"
	case BlockTypeMicro:
		return "Micro"
	case BlockTypeFinal:
		return "Final"
	default:
		return "Unknown"
	}
}

// BlockLink is one entry of the append-only BlockLinkChain (spec.md §3).
type BlockLink struct {
	Index     uint64
	DSEpoch   uint64
	BlockType BlockType
	Hash      Hash256
}
