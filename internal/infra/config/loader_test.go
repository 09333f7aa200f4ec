package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Store.Path)
}

func TestLoadGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, ConfigFileName, `
[store]
backend = "git"
path = "/data/jiraffe"

[log]
level = "debug"
`)
	loader := NewLoaderWithGlobalDir(t.TempDir(), globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, BackendGit, cfg.Store.Backend)
	assert.Equal(t, "/data/jiraffe", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLocalOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	localDir := t.TempDir()
	writeConfig(t, globalDir, ConfigFileName, `
[store]
backend = "git"

[log]
level = "debug"
`)
	writeConfig(t, localDir, LocalFileName, `
[store]
backend = "json"
`)
	loader := NewLoaderWithGlobalDir(localDir, globalDir)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Store.Backend)
	// Unset local fields fall through to global.
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	localDir := t.TempDir()
	writeConfig(t, localDir, LocalFileName, `
[store]
backend = "sqlite"
`)
	loader := NewLoaderWithGlobalDir(localDir, t.TempDir())

	_, err := loader.Load()
	assert.ErrorContains(t, err, "unknown store backend")
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	localDir := t.TempDir()
	writeConfig(t, localDir, LocalFileName, `store = [`)
	loader := NewLoaderWithGlobalDir(localDir, t.TempDir())

	_, err := loader.Load()
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
