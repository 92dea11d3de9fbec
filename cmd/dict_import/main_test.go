package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("# pt\nola\nmundo\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("casa 12\n"), 0o644))

	words, err := readFiles([]string{a, b})

	require.NoError(t, err)
	assert.Equal(t, []string{"ola", "mundo", "casa"}, words)

	_, err = readFiles([]string{filepath.Join(dir, "missing.txt")})
	assert.Error(t, err)
}

func TestAppConfig_RejectsReadOnlyTargets(t *testing.T) {
	t.Setenv("ENV_PATH", "")
	t.Setenv("DICT_SOURCE", "")

	_, err := (&AppConfig{ENV: "test"}).Load("embedded")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "import target must be")
}

func TestRootCommand_RequiresFlags(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--target", "pg"})
	cmd.SetOut(&discard{})
	cmd.SetErr(&discard{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
