package pow

import "math/big"

// Ethash epoch sizing constants (EIP-1057 / go-ethereum's params/config.go
// naming), reproduced here as pure arithmetic per SPEC_FULL.md §4.13: this
// is dataset/cache *sizing*, not the DAG generation or hashimoto loop
// itself, so it sits on the spec-approved side of the Ethash black-box
// boundary.
const (
	epochLength        = 30000
	hashBytes          = 64
	mixBytes           = 128
	cacheBytesInit     = 1 << 24
	cacheBytesGrowth   = 1 << 17
	datasetBytesInit   = 1 << 30
	datasetBytesGrowth = 1 << 23
)

// EpochParams returns the full dataset size and light cache size for the
// epoch containing block, matching original_source/tests/POW/test_POW.cpp's
// ethash_params_init_genesis_calcifide_check (block 22) and
// ethash_params_calcifide_check_30000 golden vectors.
func EpochParams(block uint64) (datasetSize, cacheSize uint64) {
	epoch := block / epochLength
	return datasetSizeForEpoch(epoch), cacheSizeForEpoch(epoch)
}

func cacheSizeForEpoch(epoch uint64) uint64 {
	sz := cacheBytesInit + cacheBytesGrowth*epoch - hashBytes
	for !isPrimeMultiple(sz, hashBytes) {
		sz -= 2 * hashBytes
	}
	return sz
}

func datasetSizeForEpoch(epoch uint64) uint64 {
	sz := datasetBytesInit + datasetBytesGrowth*epoch - mixBytes
	for !isPrimeMultiple(sz, mixBytes) {
		sz -= 2 * mixBytes
	}
	return sz
}

// isPrimeMultiple reports whether sz/unit is prime, the search condition
// Ethash's reference epoch-sizing algorithm iterates on.
func isPrimeMultiple(sz, unit uint64) bool {
	q := new(big.Int).SetUint64(sz / unit)
	return q.ProbablyPrime(20)
}
