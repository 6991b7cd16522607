package pow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestStringToBlockHash_RoundTrip mirrors
// original_source/tests/POW/test_POW.cpp's test_stringToBlockhash: a
// well-formed 64-character hex string round-trips exactly.
func TestStringToBlockHash_RoundTrip(t *testing.T) {
	original := "7e44356ee3441623bc72a683fd3708fdf75e971bbe294f33e539eedad4b92b34"[:64]
	h := StringToBlockHash(original)
	require.Equal(t, original, BlockHashToHex(h))
}

// TestStringToBlockHash_ShortInputDoesNotRoundTrip mirrors
// test_stringToBlockhash_smaller_than_expect_message: a too-short input
// does not survive the round trip unchanged.
func TestStringToBlockHash_ShortInputDoesNotRoundTrip(t *testing.T) {
	original := "badf00d"
	h := StringToBlockHash(original)
	require.NotEqual(t, original, BlockHashToHex(h))
}

// TestStringToBlockHash_OverflowInputDoesNotRoundTrip mirrors
// test_stringToBlockhash_overflow: an oversized input is truncated, not
// rejected, and so does not round-trip either.
func TestStringToBlockHash_OverflowInputDoesNotRoundTrip(t *testing.T) {
	original := ""
	for i := 0; i < 10; i++ {
		original += "7e44356ee3441623bc72a683fd3708fdf75e971bbe294f33e539eedad4b92b34"
	}
	h := StringToBlockHash(original)
	require.NotEqual(t, original, BlockHashToHex(h))
}

func TestParseBlockHash_RejectsShortInput(t *testing.T) {
	_, err := ParseBlockHash("badf00d")
	require.ErrorIs(t, err, ErrShortHash)
}

// TestEpochParams_GenesisEpoch mirrors
// ethash_params_init_genesis_calcifide_check (block 22, epoch 0).
func TestEpochParams_GenesisEpoch(t *testing.T) {
	dataset, cache := EpochParams(22)
	require.Equal(t, uint64(1073739904), dataset)
	require.Equal(t, uint64(16776896), cache)
}

// TestEpochParams_Epoch1 mirrors ethash_params_calcifide_check_30000
// (block 30000, epoch 1).
func TestEpochParams_Epoch1(t *testing.T) {
	dataset, cache := EpochParams(30000)
	require.Equal(t, uint64(1082130304), dataset)
	require.Equal(t, uint64(16907456), cache)
}

// TestCheckDifficulty mirrors ethash_check_difficulty_check's byte-lexical
// comparisons.
func TestCheckDifficulty(t *testing.T) {
	var hash, target BlockHash
	copy(hash[:], "11111111111111111111111111111111")
	copy(target[:], "22222222222222222222222222222222")
	require.True(t, CheckDifficulty(hash, target))
	require.True(t, CheckDifficulty(hash, hash))

	var tighter BlockHash
	copy(tighter[:], "11111111111111111111111111111112")
	require.True(t, CheckDifficulty(hash, tighter))

	var stricter BlockHash
	copy(stricter[:], "11111111111111111111111111111110")
	require.False(t, CheckDifficulty(hash, stricter))
}

// Scenario 4 (a golden Ethash block header/nonce/mix triple) requires the
// actual hashimoto/DAG implementation, which this package deliberately
// does not provide (see verify.go) — so it is not covered here.
