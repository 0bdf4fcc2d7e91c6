package config

const (
	DefaultPoolName = "thdpool"
	DefaultJobs     = 64
	DefaultSpin     = "2ms"
	DefaultDuration = "10s"
	DefaultLogLevel = "info"
)

// DefaultConfig returns a Config with all default values applied.
// Pool sizing keeps the -1 sentinels so the pool package's own defaults
// (min 3, max 9) apply unless overridden.
func DefaultConfig() *Config {
	return &Config{
		Pool: PoolConfig{
			Min:  -1,
			Max:  -1,
			Node: -1,
			Name: DefaultPoolName,
		},
		Bench: BenchConfig{
			Jobs:     DefaultJobs,
			Spin:     DefaultSpin,
			Duration: DefaultDuration,
		},
		LogLevel: DefaultLogLevel,
	}
}
