package types

// BlsAggregateOutput is the result of aggregating a set of public keys.
type BlsAggregateOutput interface {
	GetAggregatePublicKey() PubKey
}

// BlsConstructor abstracts the BLS12-381 backend used for co-signature
// verification (spec.md §4.2), so CoSigVerifier is agnostic to which curve
// implementation backs it (spec.md §9 "co-signature verification as a pure
// function").
type BlsConstructor interface {
	// Aggregate computes the aggregate public key over keys.
	Aggregate(keys []PubKey) (BlsAggregateOutput, error)
	// VerifyMultiSig verifies a multi-signature sig over message under the
	// aggregate public key aggPk.
	VerifyMultiSig(message []byte, sig Signature, aggPk PubKey) (bool, error)
}
