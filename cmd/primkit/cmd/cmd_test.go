package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"primkit/cmd/primkit/cmd"
	"primkit/internal/logging"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logging.Set(nil) })
	var stdout, stderr bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"1.2.0", "1.10", "-1\n"},
		{"v2", "2.0.0", "0\n"},
		{"1.0.0", "1.0.0-rc1", "1\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, "version", "compare", tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}

	_, _, err := run(t, "version", "compare", "x", "1")
	assert.Error(t, err)
}

func TestVersionPacked(t *testing.T) {
	out, _, err := run(t, "version", "packed", "1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "0x000100020003\n", out)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "primkit v"+cmd.Version)
}

func TestConfigMerge(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.toml", "final = [\"mode\"]\nmode = \"prod\"\nport = 80\n")
	over := writeFile(t, dir, "over.yaml", "mode: dev\nport: 8080\nname: demo\n")

	out, stderr, err := run(t, "-v", "config", "merge", "--policy", "overwrite", "--format", "json", base, over)
	require.NoError(t, err)
	assert.JSONEq(t, `{"final":["mode"],"mode":"prod","name":"demo","port":"8080"}`, out)
	assert.Contains(t, stderr, "overwrite of final property blocked")

	out, _, err = run(t, "config", "merge", "-p", "skip", "-f", "yaml", base, over)
	require.NoError(t, err)
	assert.Contains(t, out, "port: \"80\"")

	t.Setenv("APP_PORT", "9")
	out, _, err = run(t, "config", "merge", "--env", "app", base)
	require.NoError(t, err)
	assert.Contains(t, out, `port = "9"`)

	_, _, err = run(t, "config", "merge", "-p", "replace", base)
	assert.Error(t, err)
}

func TestConfigGet(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "app.json", `{"server": {"hosts": ["a", "b"]}}`)

	out, _, err := run(t, "config", "get", path, "server.hosts")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", out)

	_, _, err = run(t, "config", "get", path, "missing")
	assert.Error(t, err)
}
