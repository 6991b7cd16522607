package pow

import "bytes"

// CheckDifficulty reports whether hash is at least as difficult as (i.e.
// numerically no greater than) target, matching POW::CheckDificulty's
// big-endian byte comparison in
// original_source/tests/POW/test_POW.cpp's ethash_check_difficulty_check.
// This is a pure comparison, not a seal check, so it stays in scope for
// this package even though full mining/verification does not.
func CheckDifficulty(hash, target BlockHash) bool {
	return bytes.Compare(hash[:], target[:]) <= 0
}

// Verifier is the external collaborator this package hands a completed
// PoW submission to for the actual Ethash seal check. Its implementation
// (DAG/light-cache generation, the hashimoto mix loop) is explicitly out
// of scope per this repository's purpose: only the interface boundary is
// modeled, so callers can plug in a real Ethash backend without this
// package needing to depend on one.
type Verifier interface {
	// Verify reports whether nonce is a valid PoW solution for header at
	// the given difficulty, producing mix as a side output for the caller
	// to persist or re-check.
	Verify(header BlockHash, nonce uint64, difficulty BlockHash) (mix BlockHash, ok bool)
}
