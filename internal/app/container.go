// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/princemuel/jiraffe/internal/domain"
	"github.com/princemuel/jiraffe/internal/infra/config"
	"github.com/princemuel/jiraffe/internal/infra/gitstore"
	"github.com/princemuel/jiraffe/internal/infra/jsonstore"
	"github.com/princemuel/jiraffe/internal/tracker"
)

// Paths holds the resolved filesystem locations.
type Paths struct {
	DataDir   string // Directory holding the persisted state
	StorePath string // Data file (json) or repository (git) path
}

// Container provides dependency injection for the application.
// The repository is constructed once per process and threaded explicitly
// to every component that needs store access.
type Container struct {
	Store            domain.Store
	StoreInitializer domain.StoreInitializer
	Tracker          *tracker.Repository
	Logger           *slog.Logger
	Config           *config.Config
	Paths            Paths
}

// New creates a Container, loading config relative to the given directory.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dataDir, err := resolveDataDir(cfg)
	if err != nil {
		return nil, err
	}

	var store domain.Store
	var storeInit domain.StoreInitializer
	var storePath string
	switch cfg.Store.Backend {
	case config.BackendGit:
		storePath = filepath.Join(dataDir, "state.git")
		gitStore := gitstore.New(storePath)
		store = gitStore
		storeInit = gitStore
	default:
		storePath = filepath.Join(dataDir, "jiraffe.json")
		jsonStore := jsonstore.New(storePath)
		store = jsonStore
		storeInit = jsonStore
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLevel(cfg.Log.Level),
	}))

	return &Container{
		Store:            store,
		StoreInitializer: storeInit,
		Tracker:          tracker.NewRepository(store),
		Logger:           logger,
		Config:           cfg,
		Paths:            Paths{DataDir: dataDir, StorePath: storePath},
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(store domain.Store, storeInit domain.StoreInitializer, logger *slog.Logger) *Container {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		Store:            store,
		StoreInitializer: storeInit,
		Tracker:          tracker.NewRepository(store),
		Logger:           logger,
		Config:           config.NewDefaultConfig(),
	}
}

// resolveDataDir picks the data directory: environment override first,
// then config, then the XDG data directory.
func resolveDataDir(cfg *config.Config) (string, error) {
	if dir := os.Getenv("JIRAFFE_DATA_DIR"); dir != "" {
		return dir, nil
	}
	if cfg.Store.Path != "" {
		return cfg.Store.Path, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "jiraffe"), nil
}
