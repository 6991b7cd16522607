package types

import "fmt"

// Hash256 is a 32-byte hash, used for block hashes, header self-hashes, and
// committee hashes.
type Hash256 [32]byte

func (h Hash256) String() string {
	return fmt.Sprintf("%x", h[:])
}

func (h Hash256) IsZero() bool {
	return h == Hash256{}
}

// Signature is a fixed-size BLS point, per the wire encoding in spec.md §6.
type Signature [64]byte

// PubKey is a BLS12-381 compressed public key. Kept as a variable-length
// byte slice rather than a fixed array since the concrete curve
// implementation determines the compressed point size.
type PubKey []byte

func (p PubKey) Equal(o PubKey) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p PubKey) String() string {
	return fmt.Sprintf("%x", []byte(p))
}

// Peer is a network address. The zero value ("0.0.0.0:0") is the
// self-representation sentinel described in spec.md §4.3/§9: a node stores
// itself in its own committee view with a null network address.
type Peer struct {
	IPAddr string
	Port   uint32
}

var ZeroPeer = Peer{}

func (p Peer) IsZero() bool {
	return p == ZeroPeer
}

func (p Peer) String() string {
	if p.IsZero() {
		return "0.0.0.0:0"
	}
	return fmt.Sprintf("%s:%d", p.IPAddr, p.Port)
}

// BitVector is a finite ordered sequence of booleans over committee
// positions, per spec.md §3.
type BitVector []bool

func (b BitVector) PopCount() int {
	n := 0
	for _, bit := range b {
		if bit {
			n++
		}
	}
	return n
}
