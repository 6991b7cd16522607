package wire

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/isybelharto/Zilliqa/types"
)

func sampleHeader() types.VCBlockHeader {
	h := types.VCBlockHeader{
		Version:                1,
		ViewChangeDSEpoch:      42,
		ViewChangeEpoch:        7,
		ViewChangeState:        types.StateViewChange,
		CandidateLeaderNetwork: types.Peer{IPAddr: "10.0.0.9", Port: 9001},
		CandidateLeaderPubKey:  types.PubKey{0xaa, 0xbb, 0xcc},
		FaultyLeaders: []types.FaultyLeader{
			{PubKey: types.PubKey{0x01}, Peer: types.Peer{IPAddr: "10.0.0.1", Port: 9000}},
			{PubKey: types.PubKey{0x02}, Peer: types.Peer{IPAddr: "10.0.0.2", Port: 9002}},
		},
	}
	h.CommitteeHash[0] = 0xde
	h.PrevHash[0] = 0xad
	h.MyHash = ComputeMyHash(h)
	return h
}

// TestEncodeDecodeHeader_RoundTrip covers a header with a non-empty
// FaultyLeaders list, exercising codec.go's faulty-leader loop on both
// the encode and decode side.
func TestEncodeDecodeHeader_RoundTrip(t *testing.T) {
	h := sampleHeader()

	encoded := EncodeHeader(h)
	decoded, n, err := DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, h, decoded)
}

// TestEncodeDecodeBitVector_RoundTrip covers a length that is not a
// multiple of 8, exercising the padding/masking bits in
// EncodeBitVector/DecodeBitVector.
func TestEncodeDecodeBitVector_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		b    types.BitVector
	}{
		{"empty", types.BitVector{}},
		{"single bit set", types.BitVector{true}},
		{"single bit unset", types.BitVector{false}},
		{"seven bits, not byte aligned", types.BitVector{true, false, true, true, false, false, true}},
		{"nine bits, spans two bytes", types.BitVector{
			true, true, true, true, true, true, true, true, true,
		}},
		{"byte aligned", types.BitVector{true, false, true, false, true, false, true, false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeBitVector(tt.b)
			decoded, n, err := DecodeBitVector(encoded)
			require.NoError(t, err)
			require.Equal(t, len(encoded), n)
			require.Equal(t, tt.b, decoded)
		})
	}
}

// TestEncodeBitVector_UnusedTrailingBitsAreZero checks that a bit length
// not divisible by 8 leaves the unused low bits of the final packed byte
// clear, per codec.go's stated padding contract.
func TestEncodeBitVector_UnusedTrailingBitsAreZero(t *testing.T) {
	b := types.BitVector{true, true, true}
	encoded := EncodeBitVector(b)
	require.Len(t, encoded, 2+1)
	require.Equal(t, byte(0b11100000), encoded[2])
}

// TestEncodeDecodeBlock_RoundTrip asserts DecodeBlock(EncodeBlock(b)) == b
// directly, with a non-empty FaultyLeaders list and bitvectors whose
// lengths are not multiples of 8, rather than relying only on incidental
// coverage through the view-change pipeline's single happy-path shape.
func TestEncodeDecodeBlock_RoundTrip(t *testing.T) {
	header := sampleHeader()
	b := types.VCBlock{
		Header:    header,
		CS1:       types.Signature{0x11, 0x22},
		B1:        types.BitVector{true, false, true, true, false},
		CS2:       types.Signature{0x33, 0x44},
		B2:        types.BitVector{true, true, true, true, true, true, true, true, true},
		Timestamp: 1700000000,
	}
	b.BlockHash = ComputeMyHash(header)

	encoded := EncodeBlock(b)
	decoded, err := DecodeBlock(encoded, 0)
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

// TestDecodeBlock_RespectsOffset checks that DecodeBlock starts parsing
// at the given offset rather than at 0, matching how VCCore is handed
// (raw, offset_to_body) for the [MessageType][InstructionType][body]
// frame layout.
func TestDecodeBlock_RespectsOffset(t *testing.T) {
	header := sampleHeader()
	b := types.VCBlock{
		Header:    header,
		CS1:       types.Signature{0x55},
		B1:        types.BitVector{false, true, false},
		CS2:       types.Signature{0x66},
		B2:        types.BitVector{true, false, true, false, true, false, true, false},
		Timestamp: 1700000001,
		BlockHash: ComputeMyHash(header),
	}

	prefix := []byte{MessageTypeNode, InstructionTypeVCBlk}
	buf := append(prefix, EncodeBlock(b)...)

	decoded, err := DecodeBlock(buf, len(prefix))
	require.NoError(t, err)
	require.Equal(t, b, decoded)
}

// TestBuildOutboundFrame_NeverAliasesInput checks that BuildOutboundFrame
// always produces a fresh backing array, per codec.go's contract that
// fan-out never reuses the inbound buffer.
func TestBuildOutboundFrame_NeverAliasesInput(t *testing.T) {
	header := sampleHeader()
	b := types.VCBlock{Header: header, BlockHash: ComputeMyHash(header)}

	frame := BuildOutboundFrame(b)
	require.Equal(t, MessageTypeNode, frame[0])
	require.Equal(t, InstructionTypeVCBlk, frame[1])

	frame[0] = 0xff
	frame2 := BuildOutboundFrame(b)
	require.Equal(t, MessageTypeNode, frame2[0])
}
