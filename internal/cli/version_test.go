package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	app := New()
	app.SetVersion("1.2.3", "abc1234", "2026-08-02")

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetErr(&out)
	app.rootCmd.SetArgs([]string{"version"})

	require.NoError(t, app.Execute())

	assert.Contains(t, out.String(), "thdpool version 1.2.3")
	assert.Contains(t, out.String(), "commit: abc1234")
	assert.Contains(t, out.String(), "built: 2026-08-02")
}

func TestVersionCmd_Defaults(t *testing.T) {
	app := New()

	var out bytes.Buffer
	app.rootCmd.SetOut(&out)
	app.rootCmd.SetArgs([]string{"version"})

	require.NoError(t, app.Execute())

	assert.Contains(t, out.String(), "thdpool version dev")
	assert.Contains(t, out.String(), "commit: unknown")
}
