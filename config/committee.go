package config

import (
	"encoding/hex"

	"github.com/pkg/errors"

	"github.com/isybelharto/Zilliqa/types"
)

// MemberConfig is one YAML-configured DS committee seed entry: bootstrap
// peers listed as plain config strings rather than discovered at genesis.
type MemberConfig struct {
	PubKeyHex string `yaml:"pubKey"`
	IPAddr    string `yaml:"ipAddr"`
	Port      uint32 `yaml:"port"`
}

// CommitteeConfig seeds the initial DS committee view and identifies this
// node's own key within it.
type CommitteeConfig struct {
	SelfPubKeyHex string         `yaml:"selfPubKey"`
	Members       []MemberConfig `yaml:"members"`
}

// Resolve decodes the configured hex public keys into the committee's
// runtime representation, matching spec.md §3's CommitteeMember shape.
func (c CommitteeConfig) Resolve() ([]types.CommitteeMember, types.PubKey, error) {
	self, err := hex.DecodeString(c.SelfPubKeyHex)
	if err != nil {
		return nil, nil, errors.Wrap(err, "decode self public key")
	}

	members := make([]types.CommitteeMember, 0, len(c.Members))
	for i, m := range c.Members {
		pk, err := hex.DecodeString(m.PubKeyHex)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "decode committee member %d public key", i)
		}
		members = append(members, types.CommitteeMember{
			PubKey: types.PubKey(pk),
			Peer:   types.Peer{IPAddr: m.IPAddr, Port: m.Port},
		})
	}

	return members, types.PubKey(self), nil
}
