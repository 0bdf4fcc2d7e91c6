package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, -1, cfg.Pool.Min)
	assert.Equal(t, -1, cfg.Pool.Max)
	assert.Equal(t, -1, cfg.Pool.Node)
	assert.Equal(t, DefaultPoolName, cfg.Pool.Name)
	assert.Equal(t, DefaultJobs, cfg.Bench.Jobs)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoad_ReadsYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thdpool.yaml")
	data := `pool:
  min: 2
  max: 6
  node: 1
  name: custom
bench:
  jobs: 16
  spin: 1ms
  duration: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Pool.Min)
	assert.Equal(t, 6, cfg.Pool.Max)
	assert.Equal(t, 1, cfg.Pool.Node)
	assert.Equal(t, "custom", cfg.Pool.Name)
	assert.Equal(t, 16, cfg.Bench.Jobs)
	assert.Equal(t, "1ms", cfg.Bench.Spin)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_PartialYamlKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thdpool.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, DefaultJobs, cfg.Bench.Jobs)
}

func TestLoad_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thdpool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not yaml"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("THDPOOL_NAME", "from-env")
	t.Setenv("THDPOOL_LOG_LEVEL", "error")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Pool.Name)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoad_ValidatesAfterOverrides(t *testing.T) {
	t.Setenv("THDPOOL_LOG_LEVEL", "shout")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
