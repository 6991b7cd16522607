package config

import (
	"testing"
	"time"
)

func TestConsensusConfigWithDefaults(t *testing.T) {
	tests := []struct {
		name     string
		input    ConsensusConfig
		expected ConsensusConfig
	}{
		{
			name:  "empty config gets every default",
			input: ConsensusConfig{},
			expected: ConsensusConfig{
				VCBlockVersion:                     1,
				ConsensusObjectTimeout:             60 * time.Second,
				ViewChangeTime:                     60 * time.Second,
				ViewChangePrecheckTime:             15 * time.Second,
				ViewChangeExtraTime:                5 * time.Second,
				NumDSElection:                      10,
				NumForwardedBlockReceiversPerShard: 11,
				NumOfTreebasedChildClusters:        4,
			},
		},
		{
			name: "explicit values are preserved",
			input: ConsensusConfig{
				VCBlockVersion:                     3,
				NumDSElection:                      20,
				NumForwardedBlockReceiversPerShard: 5,
			},
			expected: ConsensusConfig{
				VCBlockVersion:                     3,
				ConsensusObjectTimeout:             60 * time.Second,
				ViewChangeTime:                     60 * time.Second,
				ViewChangePrecheckTime:             15 * time.Second,
				ViewChangeExtraTime:                5 * time.Second,
				NumDSElection:                      20,
				NumForwardedBlockReceiversPerShard: 5,
				NumOfTreebasedChildClusters:        4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.input.WithDefaults()
			if got != tt.expected {
				t.Errorf("WithDefaults() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestConsensusConfigTimestampTolerance(t *testing.T) {
	c := ConsensusConfig{
		ConsensusObjectTimeout: 10 * time.Second,
		ViewChangeTime:         20 * time.Second,
		ViewChangePrecheckTime: 5 * time.Second,
		ViewChangeExtraTime:    1 * time.Second,
	}
	if got, want := c.TimestampTolerance(), 36*time.Second; got != want {
		t.Errorf("TimestampTolerance() = %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dsvcd.yaml"); err == nil {
		t.Error("Load() with missing file: expected error, got nil")
	}
}
