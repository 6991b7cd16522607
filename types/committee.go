package types

// CommitteeMember is one entry of the DS committee: a signer's identity key
// and its last-known network address. Insertion order is significant — it
// defines the signer's position in B1/B2 bitmaps (spec.md §3).
type CommitteeMember struct {
	PubKey PubKey
	Peer   Peer
}

func (m CommitteeMember) Equal(o CommitteeMember) bool {
	return m.PubKey.Equal(o.PubKey) && m.Peer == o.Peer
}

// DSCommittee is the ordered, mutex-guarded view of the Directory Service
// committee. Implementations must serialize all mutation and preserve
// insertion order for bitmap positions (spec.md §3 invariant 1, §5).
type DSCommittee interface {
	// Len returns the number of members currently in the committee.
	Len() int
	// Members returns a snapshot slice of the committee in signer order.
	// Callers must not mutate the returned slice.
	Members() []CommitteeMember
	// IndexOf returns the position of the first exact match of member, or -1.
	IndexOf(member CommitteeMember) int
	// IndexOfPubKey returns the position of the first member whose pubkey
	// matches, ignoring the peer field (used by the retrieval mutator
	// variant, spec.md §4.3).
	IndexOfPubKey(pk PubKey) int
	// RemoveAt removes the member at position idx.
	RemoveAt(idx int)
	// Append adds member to the tail.
	Append(member CommitteeMember)
	// Hash computes H(committee) as of the current state, used for the
	// committee-hash check (spec.md §4.1 step 9).
	Hash() Hash256
}
