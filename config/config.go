// Package config loads the chunking core's YAML-backed tunables, the way
// the teacher's cell/pool configuration is loaded: read file, unmarshal,
// apply defaults, validate.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultMaxChunkItemsCount is MAX_CHUNK_ITEMS_COUNT from the base spec: the
// number of chunk items a single chunk may hold before the content walk
// aborts and the caller retries with splitting enabled.
const DefaultMaxChunkItemsCount = 5000

// DefaultMemoCacheCapacity sizes the memoization cache fronting
// capability-surface calls when no override is configured.
const DefaultMemoCacheCapacity = 1 << 16

// Config holds the tunables that influence the chunking core's behavior.
type Config struct {
	MaxChunkItemsCount int  `yaml:"max_chunk_items_count"`
	MemoCacheCapacity  int  `yaml:"memo_cache_capacity"`
	Debug              bool `yaml:"debug"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	return &Config{
		MaxChunkItemsCount: DefaultMaxChunkItemsCount,
		MemoCacheCapacity:  DefaultMemoCacheCapacity,
	}
}

// Load reads and validates a Config from a YAML file, defaulting any field
// left unset.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse yaml: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.MaxChunkItemsCount == 0 {
		c.MaxChunkItemsCount = DefaultMaxChunkItemsCount
	}
	if c.MemoCacheCapacity == 0 {
		c.MemoCacheCapacity = DefaultMemoCacheCapacity
	}
}

// Validate checks the tunables are in range.
func (c *Config) Validate() error {
	if c.MaxChunkItemsCount <= 0 {
		return fmt.Errorf("config: max_chunk_items_count must be positive, got %d", c.MaxChunkItemsCount)
	}
	if c.MemoCacheCapacity < 0 {
		return fmt.Errorf("config: memo_cache_capacity cannot be negative, got %d", c.MemoCacheCapacity)
	}
	return nil
}
