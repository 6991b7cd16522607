package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ConsensusConfig carries the tunable constants of spec.md §6 as
// configuration rather than compiled-in literals, pushing tunables into
// YAML-backed config structs rather than hardcoding them.
type ConsensusConfig struct {
	// VCBlockVersion is the accepted VCBlock header version tag.
	VCBlockVersion uint32 `yaml:"vcBlockVersion"`

	// Timestamp tolerance summands (spec.md §4.1 step 8).
	ConsensusObjectTimeout time.Duration `yaml:"consensusObjectTimeout"`
	ViewChangeTime         time.Duration `yaml:"viewChangeTime"`
	ViewChangePrecheckTime time.Duration `yaml:"viewChangePrecheckTime"`
	ViewChangeExtraTime    time.Duration `yaml:"viewChangeExtraTime"`

	// GuardMode disables committee mutation (spec.md §4.3).
	GuardMode bool `yaml:"guardMode"`

	// Fan-out gates and sizing (spec.md §4.1 step 14, §4.7).
	LookupNodeMode                    bool `yaml:"lookupNodeMode"`
	BroadcastTreebasedClusterMode     bool `yaml:"broadcastTreebasedClusterMode"`
	NumForwardedBlockReceiversPerShard int  `yaml:"numForwardedBlockReceiversPerShard"`
	NumDSElection                     int  `yaml:"numDSElection"`
	NumOfTreebasedChildClusters       int  `yaml:"numOfTreebasedChildClusters"`
}

// TimestampTolerance sums the four summands of spec.md §4.1 step 8.
func (c ConsensusConfig) TimestampTolerance() time.Duration {
	return c.ConsensusObjectTimeout + c.ViewChangeTime +
		c.ViewChangePrecheckTime + c.ViewChangeExtraTime
}

func (c ConsensusConfig) WithDefaults() ConsensusConfig {
	cpy := c
	if cpy.VCBlockVersion == 0 {
		cpy.VCBlockVersion = 1
	}
	if cpy.ConsensusObjectTimeout == 0 {
		cpy.ConsensusObjectTimeout = 60 * time.Second
	}
	if cpy.ViewChangeTime == 0 {
		cpy.ViewChangeTime = 60 * time.Second
	}
	if cpy.ViewChangePrecheckTime == 0 {
		cpy.ViewChangePrecheckTime = 15 * time.Second
	}
	if cpy.ViewChangeExtraTime == 0 {
		cpy.ViewChangeExtraTime = 5 * time.Second
	}
	if cpy.NumDSElection == 0 {
		cpy.NumDSElection = 10
	}
	if cpy.NumForwardedBlockReceiversPerShard == 0 {
		cpy.NumForwardedBlockReceiversPerShard = cpy.NumDSElection + 1
	}
	if cpy.NumOfTreebasedChildClusters == 0 {
		cpy.NumOfTreebasedChildClusters = 4
	}
	return cpy
}

// Config is the top-level, YAML-loaded node configuration.
type Config struct {
	DB        DBConfig        `yaml:"db"`
	Logger    *LogConfig      `yaml:"logger"`
	Consensus ConsensusConfig `yaml:"consensus"`
	Committee CommitteeConfig `yaml:"committee"`
}

func (c Config) WithDefaults() Config {
	cpy := c
	cpy.DB = cpy.DB.WithDefaults()
	cpy.Consensus = cpy.Consensus.WithDefaults()
	return cpy
}

// Load reads and parses a YAML config file, applying defaults for any
// unset field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	withDefaults := cfg.WithDefaults()
	return &withDefaults, nil
}
