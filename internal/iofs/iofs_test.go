package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnpokedex"),
		filepath.Join(tmpDir, ".cache", "gnpokedex"),
		filepath.Join(tmpDir, ".local", "share", "gnpokedex", "logs"),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), dir)
	}
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestEnsureDirs_FileInPlace verifies a file does not pass for a
// directory.
func TestEnsureDirs_FileInPlace(t *testing.T) {
	tmpDir := t.TempDir()
	cache := filepath.Join(tmpDir, ".cache", "gnpokedex")
	require.NoError(t, os.MkdirAll(filepath.Dir(cache), 0755))
	require.NoError(t, os.WriteFile(cache, nil, 0644))

	err := EnsureDirs(tmpDir)
	require.Error(t, err)
	assert.True(t, errcode.Is(err, errcode.CreateDirError))
}

// TestEnsureConfigFile_KeepsExisting verifies user edits survive.
func TestEnsureConfigFile_KeepsExisting(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	require.NoError(t, EnsureConfigFile(tmpDir))
	path := filepath.Join(tmpDir, ".config", "gnpokedex", "config.yaml")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))
	require.NoError(t, EnsureConfigFile(tmpDir))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug")
}

// TestConfigYAML_IsValid verifies the embedded template parses.
func TestConfigYAML_IsValid(t *testing.T) {
	var res map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(ConfigYAML), &res))
	assert.Contains(t, res, "corpus")
	assert.Contains(t, res, "language")
	assert.Contains(t, res, "server")
}
