package store

import "encoding/binary"

// Key prefixes, following node/store/key.go's single-byte KEY_BUNDLE
// convention so unrelated record families never collide inside one
// pebble instance.
const (
	prefixVCBlock   byte = 0x01
	prefixLinkChain byte = 0x02
)

func vcBlockKey(hash [32]byte) []byte {
	key := make([]byte, 0, 1+32)
	key = append(key, prefixVCBlock)
	key = append(key, hash[:]...)
	return key
}

// linkChainKey is big-endian so pebble's natural byte-order iteration
// walks the chain in ascending index order, mirroring the frame-number
// key encoding in node/store/clock.go.
func linkChainKey(index uint64) []byte {
	key := make([]byte, 0, 1+8)
	key = append(key, prefixLinkChain)
	key = binary.BigEndian.AppendUint64(key, index)
	return key
}

func linkChainPrefixBounds() (lower, upper []byte) {
	lower = []byte{prefixLinkChain}
	upper = []byte{prefixLinkChain + 1}
	return
}
