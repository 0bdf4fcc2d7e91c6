package config

import "os"

// envOverrides maps environment variables to config field setters.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "THDPOOL_NAME",
		apply: func(c *Config, v string) {
			c.Pool.Name = v
		},
	},
	{
		envVar: "THDPOOL_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
	{
		envVar: "THDPOOL_SPIN",
		apply: func(c *Config, v string) {
			c.Bench.Spin = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
