// Package config loads the CLI's optional YAML configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ficsit-tools/sbp/format"
)

// Config holds the CLI's persisted defaults.
type Config struct {
	// Algorithm is the default compression algorithm the convert subcommand
	// uses when --algorithm is not given on the command line.
	Algorithm string `yaml:"algorithm"`

	// LogLevel is the default zerolog level name (e.g. "info", "debug").
	LogLevel string `yaml:"log_level"`

	// Workers is the default worker-pool size for convert's batch mode.
	Workers int `yaml:"workers"`
}

// Default returns the configuration used when no file is loaded.
func Default() *Config {
	return &Config{
		Algorithm: "zlib",
		LogLevel:  "info",
		Workers:   4,
	}
}

// WorkerCount returns the configured worker count, defaulting to 1 for a
// non-positive value rather than spawning zero workers.
func (c *Config) WorkerCount() int {
	if c.Workers <= 0 {
		return 1
	}

	return c.Workers
}

// Load reads and parses the YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// CompressionAlgorithm resolves the configured algorithm name to a
// format.CompressionAlgorithm, defaulting to zlib for an unrecognized or
// empty name.
func (c *Config) CompressionAlgorithm() format.CompressionAlgorithm {
	switch c.Algorithm {
	case "none":
		return format.AlgorithmNone
	case "lz4":
		return format.AlgorithmLZ4
	case "s2":
		return format.AlgorithmS2
	case "zstd":
		return format.AlgorithmZstd
	default:
		return format.AlgorithmZlib
	}
}
