package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds configuration for the thdpool CLI
type Config struct {
	Pool     PoolConfig  `yaml:"pool"`
	Bench    BenchConfig `yaml:"bench"`
	LogLevel string      `yaml:"log_level"`
}

// PoolConfig sizes the worker pool
type PoolConfig struct {
	// Min is the number of workers created at init; -1 selects the
	// pool default (3)
	Min int `yaml:"min"`

	// Max is the initial ceiling on pool size; -1 selects the pool
	// default (9)
	Max int `yaml:"max"`

	// Node is the preferred placement hint; -1 means any
	Node int `yaml:"node"`

	// Name is the display prefix for the pool and its workers
	Name string `yaml:"name"`
}

// BenchConfig shapes the bench command's workload
type BenchConfig struct {
	// Jobs is the number of services submitted per round
	Jobs int `yaml:"jobs"`

	// Spin is how long each service busy-waits, e.g. "2ms"
	Spin string `yaml:"spin"`

	// Duration is how long the bench runs, e.g. "10s"
	Duration string `yaml:"duration"`
}

// Load reads configuration from path, falling back to defaults when the file
// does not exist. Environment overrides are applied after the file, and the
// result is validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
