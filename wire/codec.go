// Package wire implements the VCBlock wire encoding described in spec.md
// §6: header fields in declaration order using a length-prefixed
// variable-integer codec, signatures as fixed 64-byte BLS points,
// bitvectors as a u16 length plus packed bytes, and the timestamp as a
// big-endian u64.
//
// The variable-integer codec is built on protowire's varint helpers
// rather than a hand-rolled reader, in keeping with this codebase's
// reliance on google.golang.org/protobuf for its wire formats elsewhere.
package wire

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/isybelharto/Zilliqa/types"
)

// MessageType and InstructionType tag the inbound/outbound frame layout of
// spec.md §6: [1 byte MessageType][1 byte InstructionType][body].
const (
	MessageTypeNode      byte = 0x00
	InstructionTypeVCBlk byte = 0x01
)

func appendBytes(dst []byte, b []byte) []byte {
	dst = protowire.AppendVarint(dst, uint64(len(b)))
	return append(dst, b...)
}

func consumeBytes(buf []byte) ([]byte, int, error) {
	n, m := protowire.ConsumeVarint(buf)
	if m < 0 {
		return nil, 0, errors.New("consume bytes: bad length varint")
	}
	if uint64(m)+n > uint64(len(buf)) {
		return nil, 0, errors.New("consume bytes: length exceeds buffer")
	}
	start := m
	end := m + int(n)
	return buf[start:end], end, nil
}

// AppendCommitteeMember appends the wire encoding of a single committee
// member (pubkey then peer) to dst. Exported so consensus/committee can
// derive a stable committee hash using the same field encoding as the rest
// of the wire codec.
func AppendCommitteeMember(dst []byte, m types.CommitteeMember) []byte {
	dst = appendBytes(dst, m.PubKey)
	dst = appendPeer(dst, m.Peer)
	return dst
}

func appendPeer(dst []byte, p types.Peer) []byte {
	dst = appendBytes(dst, []byte(p.IPAddr))
	dst = protowire.AppendVarint(dst, uint64(p.Port))
	return dst
}

func consumePeer(buf []byte) (types.Peer, int, error) {
	ip, n, err := consumeBytes(buf)
	if err != nil {
		return types.Peer{}, 0, errors.Wrap(err, "consume peer")
	}
	port, m := protowire.ConsumeVarint(buf[n:])
	if m < 0 {
		return types.Peer{}, 0, errors.New("consume peer: bad port varint")
	}
	return types.Peer{IPAddr: string(ip), Port: uint32(port)}, n + m, nil
}

// encodeHeaderFields serializes every VCBlockHeader field in declaration
// order EXCEPT MyHash, which is derived from this encoding rather than an
// input to it (spec.md §3: "my_hash is the header's self-hash").
func encodeHeaderFields(h types.VCBlockHeader) []byte {
	var buf []byte
	buf = protowire.AppendVarint(buf, uint64(h.Version))
	buf = protowire.AppendVarint(buf, h.ViewChangeDSEpoch)
	buf = protowire.AppendVarint(buf, h.ViewChangeEpoch)
	buf = protowire.AppendVarint(buf, uint64(h.ViewChangeState))
	buf = appendPeer(buf, h.CandidateLeaderNetwork)
	buf = appendBytes(buf, h.CandidateLeaderPubKey)
	buf = protowire.AppendVarint(buf, uint64(len(h.FaultyLeaders)))
	for _, fl := range h.FaultyLeaders {
		buf = appendBytes(buf, fl.PubKey)
		buf = appendPeer(buf, fl.Peer)
	}
	buf = append(buf, h.CommitteeHash[:]...)
	buf = append(buf, h.PrevHash[:]...)
	return buf
}

// ComputeMyHash computes the header's self-hash: SHA-256 over every field
// except MyHash itself (spec.md §4.1 step 6, §9 "self-hash").
func ComputeMyHash(h types.VCBlockHeader) types.Hash256 {
	return sha256.Sum256(encodeHeaderFields(h))
}

// EncodeHeader serializes the full header, including MyHash, in declaration
// order (spec.md §6). This is the "serialize(header)" input to the
// co-signature message (spec.md §4.2 step 5) and to persistence.
func EncodeHeader(h types.VCBlockHeader) []byte {
	buf := encodeHeaderFields(h)
	return append(buf, h.MyHash[:]...)
}

// DecodeHeader parses a VCBlockHeader starting at offset 0 of buf, returning
// the header and the number of bytes consumed.
func DecodeHeader(buf []byte) (types.VCBlockHeader, int, error) {
	var h types.VCBlockHeader
	off := 0

	version, n := protowire.ConsumeVarint(buf[off:])
	if n < 0 {
		return h, 0, errors.New("decode header: version")
	}
	h.Version = uint32(version)
	off += n

	dsEpoch, n := protowire.ConsumeVarint(buf[off:])
	if n < 0 {
		return h, 0, errors.New("decode header: ds epoch")
	}
	h.ViewChangeDSEpoch = dsEpoch
	off += n

	txEpoch, n := protowire.ConsumeVarint(buf[off:])
	if n < 0 {
		return h, 0, errors.New("decode header: tx epoch")
	}
	h.ViewChangeEpoch = txEpoch
	off += n

	state, n := protowire.ConsumeVarint(buf[off:])
	if n < 0 {
		return h, 0, errors.New("decode header: state")
	}
	h.ViewChangeState = types.StateTag(state)
	off += n

	peer, n, err := consumePeer(buf[off:])
	if err != nil {
		return h, 0, errors.Wrap(err, "decode header: candidate leader network")
	}
	h.CandidateLeaderNetwork = peer
	off += n

	pk, n, err := consumeBytes(buf[off:])
	if err != nil {
		return h, 0, errors.Wrap(err, "decode header: candidate leader pubkey")
	}
	h.CandidateLeaderPubKey = types.PubKey(pk)
	off += n

	count, n := protowire.ConsumeVarint(buf[off:])
	if n < 0 {
		return h, 0, errors.New("decode header: faulty leader count")
	}
	off += n

	h.FaultyLeaders = make([]types.FaultyLeader, 0, count)
	for i := uint64(0); i < count; i++ {
		flPk, n, err := consumeBytes(buf[off:])
		if err != nil {
			return h, 0, errors.Wrap(err, "decode header: faulty leader pubkey")
		}
		off += n

		flPeer, n, err := consumePeer(buf[off:])
		if err != nil {
			return h, 0, errors.Wrap(err, "decode header: faulty leader peer")
		}
		off += n

		h.FaultyLeaders = append(h.FaultyLeaders, types.FaultyLeader{
			PubKey: types.PubKey(flPk),
			Peer:   flPeer,
		})
	}

	if len(buf[off:]) < 32*3 {
		return h, 0, errors.New("decode header: truncated hashes")
	}
	copy(h.CommitteeHash[:], buf[off:off+32])
	off += 32
	copy(h.PrevHash[:], buf[off:off+32])
	off += 32
	copy(h.MyHash[:], buf[off:off+32])
	off += 32

	return h, off, nil
}

// EncodeBitVector packs b as a u16 big-endian bit-length prefix followed by
// ceil-byte-packed bits, MSB-first within each byte, unused trailing bits
// zero (spec.md §4.2 step 5, §6).
func EncodeBitVector(b types.BitVector) []byte {
	nBytes := (len(b) + 7) / 8
	out := make([]byte, 2+nBytes)
	binary.BigEndian.PutUint16(out[:2], uint16(len(b)))
	for i, bit := range b {
		if bit {
			out[2+i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}

// DecodeBitVector unpacks a bitvector encoded by EncodeBitVector, returning
// the vector and the number of bytes consumed.
func DecodeBitVector(buf []byte) (types.BitVector, int, error) {
	if len(buf) < 2 {
		return nil, 0, errors.New("decode bitvector: truncated length")
	}
	length := int(binary.BigEndian.Uint16(buf[:2]))
	nBytes := (length + 7) / 8
	if len(buf) < 2+nBytes {
		return nil, 0, errors.New("decode bitvector: truncated body")
	}
	out := make(types.BitVector, length)
	for i := 0; i < length; i++ {
		out[i] = buf[2+i/8]&(1<<uint(7-i%8)) != 0
	}
	return out, 2 + nBytes, nil
}

// EncodeBlock serializes a full VCBlock verbatim, as persisted by BlockStore
// and as re-encoded for fan-out (spec.md §6).
func EncodeBlock(b types.VCBlock) []byte {
	var buf []byte
	header := EncodeHeader(b.Header)
	buf = appendBytes(buf, header)
	buf = append(buf, b.CS1[:]...)
	buf = appendBytes(buf, EncodeBitVector(b.B1))
	buf = append(buf, b.CS2[:]...)
	buf = appendBytes(buf, EncodeBitVector(b.B2))
	buf = binary.BigEndian.AppendUint64(buf, b.Timestamp)
	buf = append(buf, b.BlockHash[:]...)
	return buf
}

// DecodeBlock parses a VCBlock starting at offset within buf (spec.md §4.1
// step 1). Fails with a wrapped error on any framing or field-parsing
// failure, which VCCore maps to types.ErrDecode.
func DecodeBlock(buf []byte, offset int) (types.VCBlock, error) {
	var b types.VCBlock
	if offset < 0 || offset > len(buf) {
		return b, errors.New("decode block: bad offset")
	}
	rest := buf[offset:]

	headerBytes, n, err := consumeBytes(rest)
	if err != nil {
		return b, errors.Wrap(err, "decode block: header")
	}
	rest = rest[n:]

	header, hn, err := DecodeHeader(headerBytes)
	if err != nil {
		return b, errors.Wrap(err, "decode block: header fields")
	}
	if hn != len(headerBytes) {
		return b, errors.New("decode block: trailing header bytes")
	}
	b.Header = header

	if len(rest) < 64 {
		return b, errors.New("decode block: truncated cs1")
	}
	copy(b.CS1[:], rest[:64])
	rest = rest[64:]

	b1Bytes, n, err := consumeBytes(rest)
	if err != nil {
		return b, errors.Wrap(err, "decode block: b1")
	}
	rest = rest[n:]
	b1, bn, err := DecodeBitVector(b1Bytes)
	if err != nil {
		return b, errors.Wrap(err, "decode block: b1 body")
	}
	if bn != len(b1Bytes) {
		return b, errors.New("decode block: trailing b1 bytes")
	}
	b.B1 = b1

	if len(rest) < 64 {
		return b, errors.New("decode block: truncated cs2")
	}
	copy(b.CS2[:], rest[:64])
	rest = rest[64:]

	b2Bytes, n, err := consumeBytes(rest)
	if err != nil {
		return b, errors.Wrap(err, "decode block: b2")
	}
	rest = rest[n:]
	b2, bn, err := DecodeBitVector(b2Bytes)
	if err != nil {
		return b, errors.Wrap(err, "decode block: b2 body")
	}
	if bn != len(b2Bytes) {
		return b, errors.New("decode block: trailing b2 bytes")
	}
	b.B2 = b2

	if len(rest) < 8+32 {
		return b, errors.New("decode block: truncated timestamp/hash")
	}
	b.Timestamp = binary.BigEndian.Uint64(rest[:8])
	rest = rest[8:]
	copy(b.BlockHash[:], rest[:32])

	return b, nil
}

// SigningMessage composes the message signed by CS2 (spec.md §4.2 step 5):
// serialize(header) || serialize(cs1) || encode_bitvector(b1).
func SigningMessage(header types.VCBlockHeader, cs1 types.Signature, b1 types.BitVector) []byte {
	var buf []byte
	buf = append(buf, EncodeHeader(header)...)
	buf = append(buf, cs1[:]...)
	buf = append(buf, EncodeBitVector(b1)...)
	return buf
}

// BuildOutboundFrame constructs a fresh outgoing frame for fan-out, never
// reusing the inbound buffer (spec.md §4.1 step 14, §6).
func BuildOutboundFrame(b types.VCBlock) []byte {
	frame := []byte{MessageTypeNode, InstructionTypeVCBlk}
	return append(frame, EncodeBlock(b)...)
}
