// Package jsonstore provides a JSON file-based implementation of the
// whole-document Store.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/princemuel/jiraffe/internal/domain"
)

// Store persists the entire state document as one JSON file.
// Every write fully replaces the prior content.
type Store struct {
	path string
}

// New creates a Store for the given file path.
// The file does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{path: path}
}

// Read loads and decodes the whole document.
func (s *Store) Read() (*domain.State, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(content, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &state, nil
}

// Write replaces the document. The content is written to a temp file and
// renamed into place so a failed write never leaves a half document.
func (s *Store) Write(state *domain.State) error {
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Initialize creates an empty document if the file doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.Write(domain.NewState())
}

// Ensure Store implements the persistence ports.
var (
	_ domain.Store            = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
