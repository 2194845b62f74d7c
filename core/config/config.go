// Package config holds the YAML configuration for the seqprep commands.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Embedding EmbeddingConfig `yaml:"embedding"`
	Buckets   BucketConfig    `yaml:"buckets"`
}

// EmbeddingConfig configures pretrained vector loading.
type EmbeddingConfig struct {
	// Path points to a word2vec text-format vector file.
	Path string `yaml:"path"`

	// Limit caps how many vectors are read from the file. Zero reads the
	// whole file.
	Limit int `yaml:"limit"`

	// CacheSize is the number of parsed vector files kept in memory.
	CacheSize int `yaml:"cache_size"`

	// Seed makes out-of-vocabulary fallback vectors deterministic. Zero
	// seeds from entropy.
	Seed uint64 `yaml:"seed"`

	// PadToken is the token placed at vocabulary index 0.
	PadToken string `yaml:"pad_token"`
}

// BucketConfig configures sequence bucketing.
type BucketConfig struct {
	// Range is the span of sequence lengths covered by one bucket.
	Range int `yaml:"range"`

	// MinSize is the smallest pair count a bucket may keep before being
	// merged into a neighbor.
	MinSize int `yaml:"min_size"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Embedding: EmbeddingConfig{
			Limit:     0,
			CacheSize: 4,
			Seed:      0,
			PadToken:  "PAD",
		},
		Buckets: BucketConfig{
			Range:   3,
			MinSize: 10,
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
