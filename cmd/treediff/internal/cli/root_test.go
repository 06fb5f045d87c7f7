package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh root command with a private log file and returns
// its standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-file", filepath.Join(t.TempDir(), "treediff.log")}, args...))

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "treediff compares two ordered labeled trees")
	assert.Contains(t, out, "diff")
	assert.Contains(t, out, "show")
}

func TestRootCmd_ExplicitConfigMissing(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "show", "testdata/two.tree")
	assert.ErrorContains(t, err, "read config")
}

func TestRootCmd_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "treediff.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("diff:\n  format: json\n"), 0o600))

	out, err := run(t, "--config", cfg, "diff", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)
	assert.Contains(t, out, `"cost": 2`)
}

func TestRootCmd_Env(t *testing.T) {
	t.Setenv("TREEDIFF_DIFF_FORMAT", "yaml")

	out, err := run(t, "diff", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)
	assert.Contains(t, out, "cost: 2\n")
	assert.Contains(t, out, "op: relabel")
}

func TestRootCmd_FlagBeatsEnv(t *testing.T) {
	t.Setenv("TREEDIFF_DIFF_FORMAT", "yaml")

	out, err := run(t, "diff", "--format", "json", "testdata/one.tree", "testdata/two.tree")
	require.NoError(t, err)
	assert.Contains(t, out, `"cost": 2`)
}

func TestRootCmd_VerboseLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-file", logPath, "--verbose", "diff", "testdata/one.tree", "testdata/two.tree"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ted: diff computed")
	assert.Contains(t, string(data), "tree loaded")
	assert.Contains(t, string(data), "level=DEBUG")
}

func TestRootCmd_QuietLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "info.log")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--log-file", logPath, "diff", "testdata/one.tree", "testdata/two.tree"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "diff done")
	assert.NotContains(t, string(data), "level=DEBUG")
}
