// Package pow implements the pure-function helpers around the Directory
// Service's PoW seal: the block-hash string round trip and Ethash epoch
// dataset/cache sizing, grounded on
// original_source/tests/POW/test_POW.cpp's StringToBlockhash /
// BlockhashToHexString and its Ethash epoch-size golden vectors. The
// actual Ethash mining/verification loop (hashimoto, DAG generation) is
// out of scope and modeled only as the Verifier interface boundary in
// verify.go.
package pow

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// BlockHashSize is the fixed width of a block hash (spec.md §3/§6):
// 32 bytes, hex-encoded to 64 characters.
const BlockHashSize = 32

// BlockHash is a fixed-size Ethash seed/result hash.
type BlockHash [BlockHashSize]byte

// StringToBlockHash decodes a hex string into a BlockHash, truncating or
// zero-padding on length mismatch rather than failing — matching
// POW::StringToBlockhash, which copies into a fixed-size buffer using
// memcpy semantics (source strings shorter or longer than the expected
// hex length are silently truncated/padded, not rejected).
//
// encoding/hex is stdlib rather than an ecosystem library: a fixed-width
// hex codec has no third-party package in the retrieved pack that does
// anything beyond what the standard library already does exactly.
func StringToBlockHash(s string) BlockHash {
	var out BlockHash
	decoded, err := hex.DecodeString(evenLength(s))
	if err != nil {
		// Non-hex input still produces a deterministic (if garbage) hash,
		// matching the source's raw-memcpy tolerance for malformed input.
		decoded = []byte(s)
	}
	n := copy(out[:], decoded)
	_ = n
	return out
}

// evenLength drops a trailing odd hex nibble so hex.DecodeString never
// errors on merely-too-long input, matching the source's byte-for-byte
// copy semantics.
func evenLength(s string) string {
	if len(s)%2 != 0 {
		return s[:len(s)-1]
	}
	return s
}

// BlockHashToHex renders a BlockHash back to its lowercase hex string.
func BlockHashToHex(h BlockHash) string {
	return hex.EncodeToString(h[:])
}

// ErrShortHash is returned by ParseBlockHash when the input is not exactly
// BlockHashSize*2 characters long (too short or too long), unlike
// StringToBlockHash's tolerant truncate/pad behavior — ParseBlockHash is
// the strict entry point used wherever a malformed hash must be rejected
// outright.
var ErrShortHash = errors.New("pow: block hash string has wrong length")

// ParseBlockHash strictly decodes exactly BlockHashSize*2 hex characters.
func ParseBlockHash(s string) (BlockHash, error) {
	var out BlockHash
	if len(s) != BlockHashSize*2 {
		return out, ErrShortHash
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return out, errors.Wrap(err, "parse block hash")
	}
	copy(out[:], decoded)
	return out, nil
}
