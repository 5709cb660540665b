// Package config holds the engine's build- and query-time tunables,
// loadable from YAML the way Aman-CERP-amanmcp's internal/config package
// loads its own Config.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the tunables named in spec.md §6.
type Config struct {
	// BucketSize is the front-coded dictionary bucket size.
	BucketSize int `yaml:"bucket_size" json:"bucket_size"`

	// MaxK is the top-k ceiling a query may request.
	MaxK uint32 `yaml:"max_k" json:"max_k"`

	// PoolSize is the per-engine result byte pool size, in bytes.
	PoolSize int `yaml:"pool_size" json:"pool_size"`

	// BlockSize is the blocked-inverted-index block size (an addition
	// beyond spec.md's named tunables, needed to configure the blocked
	// engine variant spec.md §4.6 describes).
	BlockSize int `yaml:"block_size" json:"block_size"`
}

// DefaultBucketSize, DefaultMaxK, DefaultPoolSize are the spec's stated
// defaults; DefaultBlockSize matches postings.DefaultBlockSize.
const (
	DefaultBucketSize = 16
	DefaultMaxK       = 15
	DefaultPoolSize   = 1024
	DefaultBlockSize  = 128
)

// Default returns the builtin default configuration.
func Default() Config {
	return Config{
		BucketSize: DefaultBucketSize,
		MaxK:       DefaultMaxK,
		PoolSize:   DefaultPoolSize,
		BlockSize:  DefaultBlockSize,
	}
}

// Load reads a YAML config file, filling unset fields with defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
