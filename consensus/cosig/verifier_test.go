package cosig

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isybelharto/Zilliqa/types"
)

// fakeAggregate is a synthetic types.BlsAggregateOutput for tests: the
// "aggregate public key" is just the concatenation of the input keys, which
// lets fakeBls verify without any real curve arithmetic.
type fakeAggregate struct {
	pk types.PubKey
}

func (f fakeAggregate) GetAggregatePublicKey() types.PubKey { return f.pk }

type fakeBls struct {
	failAggregate bool
	failVerify    bool
}

func (f *fakeBls) Aggregate(keys []types.PubKey) (types.BlsAggregateOutput, error) {
	if f.failAggregate {
		return nil, errAggregate
	}
	var buf []byte
	for _, k := range keys {
		buf = append(buf, k...)
	}
	return fakeAggregate{pk: buf}, nil
}

func (f *fakeBls) VerifyMultiSig(message []byte, sig types.Signature, aggPk types.PubKey) (bool, error) {
	if f.failVerify {
		return false, nil
	}
	// A trivial deterministic "signature": the first 64 bytes of aggPk,
	// zero-extended, matches sig. Good enough to distinguish valid vs
	// tampered aggregate keys/messages in unit tests.
	var want types.Signature
	copy(want[:], aggPk)
	return bytes.Equal(want[:], sig[:]), nil
}

var errAggregate = testAggregateErr{}

type testAggregateErr struct{}

func (testAggregateErr) Error() string { return "aggregate failed" }

func committeeOf(n int) ([]types.CommitteeMember, []types.PubKey) {
	members := make([]types.CommitteeMember, n)
	keys := make([]types.PubKey, n)
	for i := 0; i < n; i++ {
		pk := types.PubKey{byte(i + 1)}
		members[i] = types.CommitteeMember{PubKey: pk, Peer: types.Peer{IPAddr: "10.0.0.1", Port: uint32(9000 + i)}}
		keys[i] = pk
	}
	return members, keys
}

func sigFor(aggPk types.PubKey) types.Signature {
	var sig types.Signature
	copy(sig[:], aggPk)
	return sig
}

func TestVerify_Success(t *testing.T) {
	committee, keys := committeeOf(5)
	threshold := NumForConsensus(5)
	require.Equal(t, 5, threshold)

	b2 := make(types.BitVector, 5)
	var aggKeys []byte
	for i := 0; i < threshold; i++ {
		b2[i] = true
		aggKeys = append(aggKeys, keys[i]...)
	}

	block := types.VCBlock{
		Header: types.VCBlockHeader{Version: 1},
		B1:     make(types.BitVector, 5),
		B2:     b2,
		CS2:    sigFor(aggKeys),
	}

	v := New(&fakeBls{})
	require.NoError(t, v.Verify(block, committee))
}

func TestVerify_InsufficientSigners(t *testing.T) {
	committee, _ := committeeOf(5)
	threshold := NumForConsensus(5)

	b2 := make(types.BitVector, 5)
	for i := 0; i < threshold-1; i++ {
		b2[i] = true
	}

	block := types.VCBlock{
		B1: make(types.BitVector, 5),
		B2: b2,
	}

	v := New(&fakeBls{})
	err := v.Verify(block, committee)
	require.Error(t, err)
}

func TestVerify_BitmapSizeMismatch(t *testing.T) {
	committee, _ := committeeOf(5)
	block := types.VCBlock{B2: make(types.BitVector, 4)}

	v := New(&fakeBls{})
	err := v.Verify(block, committee)
	require.Error(t, err)
}

func TestVerify_BadSignatureFails(t *testing.T) {
	committee, keys := committeeOf(5)
	threshold := NumForConsensus(5)

	b2 := make(types.BitVector, 5)
	for i := 0; i < threshold; i++ {
		b2[i] = true
	}
	_ = keys

	block := types.VCBlock{
		B1:  make(types.BitVector, 5),
		B2:  b2,
		CS2: types.Signature{0xFF}, // does not match the aggregate key
	}

	v := New(&fakeBls{})
	err := v.Verify(block, committee)
	require.Error(t, err)
}
