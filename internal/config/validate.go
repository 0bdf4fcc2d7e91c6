package config

import (
	"fmt"
	"time"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validateConfig checks a loaded config for field-level errors.
// -1 sentinels on pool sizing are legal: they select the pool defaults.
func validateConfig(cfg *Config) error {
	if cfg.Pool.Min < -1 {
		return fmt.Errorf("pool min must be >= -1, got %d", cfg.Pool.Min)
	}
	if cfg.Pool.Max < -1 {
		return fmt.Errorf("pool max must be >= -1, got %d", cfg.Pool.Max)
	}
	if cfg.Pool.Min >= 0 && cfg.Pool.Max >= 0 && cfg.Pool.Min > cfg.Pool.Max {
		return fmt.Errorf("pool min %d exceeds max %d", cfg.Pool.Min, cfg.Pool.Max)
	}
	if cfg.Pool.Node < -1 {
		return fmt.Errorf("pool node must be >= -1, got %d", cfg.Pool.Node)
	}
	if cfg.Pool.Name == "" {
		return fmt.Errorf("pool name must not be empty")
	}

	if cfg.Bench.Jobs <= 0 {
		return fmt.Errorf("bench jobs must be greater than 0, got %d", cfg.Bench.Jobs)
	}
	if _, err := time.ParseDuration(cfg.Bench.Spin); err != nil {
		return fmt.Errorf("bench spin: %w", err)
	}
	if _, err := time.ParseDuration(cfg.Bench.Duration); err != nil {
		return fmt.Errorf("bench duration: %w", err)
	}

	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}
	return nil
}
