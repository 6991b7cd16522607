// Package committee implements the DS committee (spec.md §3 DSCommittee)
// as a mutex-guarded ordered slice, and the CommitteeMutator that applies a
// VC block's faulty-leader list to it (spec.md §4.3).
//
// Go has no native deque; the only operations the pipeline needs — find,
// remove, append to tail, indexed iteration for bitmap positions — are
// served fine by a slice, the same "just use the right container for the
// operations you need" choice a prover registry trie makes elsewhere in
// this codebase's lineage.
package committee

import (
	"crypto/sha256"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/isybelharto/Zilliqa/types"
	"github.com/isybelharto/Zilliqa/wire"
)

// Committee is the default types.DSCommittee implementation.
type Committee struct {
	mu      sync.Mutex
	members []types.CommitteeMember
}

var _ types.DSCommittee = (*Committee)(nil)

func New(initial []types.CommitteeMember) *Committee {
	members := make([]types.CommitteeMember, len(initial))
	copy(members, initial)
	return &Committee{members: members}
}

func (c *Committee) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.members)
}

func (c *Committee) Members() []types.CommitteeMember {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.CommitteeMember, len(c.members))
	copy(out, c.members)
	return out
}

func (c *Committee) IndexOf(member types.CommitteeMember) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.IndexFunc(c.members, member.Equal)
}

func (c *Committee) IndexOfPubKey(pk types.PubKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.IndexFunc(c.members, func(m types.CommitteeMember) bool {
		return m.PubKey.Equal(pk)
	})
}

func (c *Committee) RemoveAt(idx int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < 0 || idx >= len(c.members) {
		return
	}
	c.members = slices.Delete(c.members, idx, idx+1)
}

func (c *Committee) Append(member types.CommitteeMember) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = append(c.members, member)
}

// Hash computes H(committee) over the current member ordering, used for the
// committee-hash check (spec.md §4.1 step 9, invariant 3).
func (c *Committee) Hash() types.Hash256 {
	c.mu.Lock()
	members := make([]types.CommitteeMember, len(c.members))
	copy(members, c.members)
	c.mu.Unlock()

	var buf []byte
	for _, m := range members {
		buf = wire.AppendCommitteeMember(buf, m)
	}
	return sha256.Sum256(buf)
}
