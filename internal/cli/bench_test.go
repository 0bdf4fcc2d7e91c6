package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moharaka/thdpool/internal/config"
)

func validOpts() BenchOptions {
	return BenchOptions{
		Min:      -1,
		Max:      -1,
		Node:     -1,
		Name:     "p",
		Jobs:     8,
		Spin:     time.Millisecond,
		Duration: time.Second,
	}
}

func TestBenchOptions_Validate(t *testing.T) {
	require.NoError(t, validOpts().Validate())
}

func TestBenchOptions_Validate_Jobs(t *testing.T) {
	opts := validOpts()
	opts.Jobs = 0
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs")
}

func TestBenchOptions_Validate_Duration(t *testing.T) {
	opts := validOpts()
	opts.Duration = 0
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestBenchOptions_Validate_NegativeSpin(t *testing.T) {
	opts := validOpts()
	opts.Spin = -time.Millisecond
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spin")
}

func TestBenchOptions_Validate_Name(t *testing.T) {
	opts := validOpts()
	opts.Name = ""
	err := opts.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestBenchOptions_ApplyConfig(t *testing.T) {
	app := New()
	cmd := NewBenchCmd(app)

	// Flags the user set win; everything else comes from the file.
	require.NoError(t, cmd.Flags().Set("jobs", "99"))

	cfg := config.DefaultConfig()
	cfg.Pool.Min = 2
	cfg.Pool.Name = "fromfile"
	cfg.Bench.Jobs = 7
	cfg.Bench.Spin = "3ms"

	opts := BenchOptions{Jobs: 99}
	require.NoError(t, opts.applyConfig(cfg, cmd.Flags()))

	assert.Equal(t, 99, opts.Jobs)
	assert.Equal(t, 2, opts.Min)
	assert.Equal(t, "fromfile", opts.Name)
	assert.Equal(t, 3*time.Millisecond, opts.Spin)
}

func TestBenchOptions_ApplyConfig_BadSpin(t *testing.T) {
	app := New()
	cmd := NewBenchCmd(app)

	cfg := config.DefaultConfig()
	cfg.Bench.Spin = "soon"

	opts := BenchOptions{}
	err := opts.applyConfig(cfg, cmd.Flags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spin")
}

func TestSpinFor_ReturnsAfterDuration(t *testing.T) {
	start := time.Now()
	spinFor(2 * time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Millisecond)
}

func TestSpinFor_ZeroIsNoop(t *testing.T) {
	start := time.Now()
	spinFor(0)
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
