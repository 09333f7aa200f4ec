// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the name of the TOML config file.
const ConfigFileName = "config.toml"

// LocalFileName is the per-directory override file.
const LocalFileName = "jiraffe.toml"

// Store backends.
const (
	BackendJSON = "json"
	BackendGit  = "git"
)

// Config is the application configuration.
type Config struct {
	Store StoreConfig `toml:"store"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig selects and locates the persistence backend.
type StoreConfig struct {
	Backend string `toml:"backend"` // "json" or "git"
	Path    string `toml:"path"`    // data file (json) or repository (git) path
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns the built-in defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{Backend: BackendJSON},
		Log:   LogConfig{Level: "info"},
	}
}

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // directory searched for jiraffe.toml
	globalConfDir string // e.g. ~/.config/jiraffe
}

// NewLoader creates a Loader searching localDir and the XDG config dir.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "jiraffe")
}

// Load returns the merged configuration.
// Local config takes precedence over global, which takes precedence over
// the defaults.
func (l *Loader) Load() (*Config, error) {
	base := NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(filepath.Join(l.globalConfDir, ConfigFileName))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	local, err := l.loadFile(filepath.Join(l.localDir, LocalFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if base.Store.Backend != BackendJSON && base.Store.Backend != BackendGit {
		return nil, fmt.Errorf("unknown store backend %q", base.Store.Backend)
	}

	return base, nil
}

func (l *Loader) loadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := toml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// mergeConfigs overlays non-empty fields of over onto base.
func mergeConfigs(base, over *Config) *Config {
	out := *base
	if over.Store.Backend != "" {
		out.Store.Backend = over.Store.Backend
	}
	if over.Store.Path != "" {
		out.Store.Path = over.Store.Path
	}
	if over.Log.Level != "" {
		out.Log.Level = over.Log.Level
	}
	return &out
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
