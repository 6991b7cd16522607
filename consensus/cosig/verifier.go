// Package cosig implements the two-round collective co-signature check
// over a VC block's committee bitmap (spec.md §4.2), grounded on
// node/consensus/validator/bls_app_shard_frame_validator.go's pattern of a
// free-standing validator over an injected BLS backend, and on
// Node::VerifyVCBlockCoSignature in
// original_source/src/libNode/ViewChangeBlockProcessing.cpp.
package cosig

import (
	"github.com/pkg/errors"

	"github.com/isybelharto/Zilliqa/types"
	"github.com/isybelharto/Zilliqa/wire"
)

// NumForConsensus is the BFT supermajority threshold used throughout the
// protocol: ceil(2n/3) + 1 (spec.md §4.2 step 3, GLOSSARY).
func NumForConsensus(n int) int {
	return (2*n+2)/3 + 1
}

// Verifier checks the co-signature of a VC block against a committee view.
// It is a pure function over an injected types.BlsConstructor, per spec.md
// §9's redesign note ("co-signature verification as a pure function"),
// rather than a method on some larger orchestrator object.
type Verifier struct {
	Bls types.BlsConstructor
}

func New(bls types.BlsConstructor) *Verifier {
	return &Verifier{Bls: bls}
}

// Verify implements spec.md §4.2's six-step algorithm. All steps are pure;
// no I/O.
func (v *Verifier) Verify(block types.VCBlock, committee []types.CommitteeMember) error {
	if len(block.B2) != len(committee) {
		return errors.Errorf(
			"cosig: bitmap size %d does not match committee size %d",
			len(block.B2), len(committee),
		)
	}

	keys := make([]types.PubKey, 0, len(committee))
	count := 0
	for i, present := range block.B2 {
		if present {
			keys = append(keys, committee[i].PubKey)
			count++
		}
	}

	if want := NumForConsensus(len(block.B2)); count != want {
		return errors.Errorf(
			"cosig: signer count %d does not meet threshold %d", count, want,
		)
	}

	aggregate, err := v.Bls.Aggregate(keys)
	if err != nil {
		return errors.Wrap(err, "cosig: aggregate public keys")
	}

	message := wire.SigningMessage(block.Header, block.CS1, block.B1)

	ok, err := v.Bls.VerifyMultiSig(message, block.CS2, aggregate.GetAggregatePublicKey())
	if err != nil {
		return errors.Wrap(err, "cosig: verify multi-signature")
	}
	if !ok {
		return errors.New("cosig: multi-signature verification failed")
	}

	return nil
}
