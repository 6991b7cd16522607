// Package config holds YAML-backed configuration structs and the logger
// bootstrap, following the pattern of a reference node's own config
// package (db.go, logger.go).
package config

const (
	defaultDBPath = "dsvc-store"
)

// DBConfig configures the pebble-backed storage engine used by BlockStore
// and BlockLinkChain (spec.md §4.4, §4.5).
type DBConfig struct {
	Path string `yaml:"path"`

	// Test-only: keep the database entirely in memory. Do not enable
	// outside of tests.
	InMemoryDONOTUSE bool `yaml:"-"`
}

// WithDefaults returns a copy of DBConfig with any missing fields set to
// their default values, following the same override-only-if-zero
// convention as the rest of this package's config structs.
func (c DBConfig) WithDefaults() DBConfig {
	cpy := c
	if cpy.Path == "" {
		cpy.Path = defaultDBPath
	}
	return cpy
}
