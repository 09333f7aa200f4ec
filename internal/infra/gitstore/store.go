// Package gitstore provides a Git plumbing-based implementation of the
// whole-document Store. The state document is kept as a single blob
// pointed at by refs/jiraffe/state inside a bare repository, so every
// write replaces the whole document just like the file-backed store.
package gitstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/princemuel/jiraffe/internal/domain"
)

const stateRef = plumbing.ReferenceName("refs/jiraffe/state")

// Store implements domain.Store on top of a bare git repository.
type Store struct {
	path string
}

// New creates a Store for the given repository path.
// The repository does not need to exist; Initialize creates it.
func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) open() (*git.Repository, error) {
	repo, err := git.PlainOpen(s.path)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("open state repository: %w", err)
	}
	return repo, nil
}

// Read resolves the state ref and decodes the blob it points at.
func (s *Store) Read() (*domain.State, error) {
	repo, err := s.open()
	if err != nil {
		return nil, err
	}

	ref, err := repo.Reference(stateRef, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("resolve state ref: %w", err)
	}

	data, err := readBlob(repo, ref.Hash())
	if err != nil {
		return nil, err
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptState, err)
	}
	if err := state.Validate(); err != nil {
		return nil, err
	}

	return &state, nil
}

// Write stores the document as a new blob and repoints the state ref.
// Old blobs stay in the object database until git gc collects them.
func (s *Store) Write(state *domain.State) error {
	repo, err := s.open()
	if err != nil {
		return err
	}

	content, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	hash, err := writeBlob(repo, content)
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(stateRef, hash)
	if err := repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("update state ref: %w", err)
	}

	return nil
}

// Initialize creates the bare repository and an empty document if needed.
func (s *Store) Initialize() error {
	if _, err := git.PlainInit(s.path, true); err != nil {
		if !errors.Is(err, git.ErrRepositoryAlreadyExists) {
			return fmt.Errorf("init state repository: %w", err)
		}
	}

	repo, err := s.open()
	if err != nil {
		return err
	}
	if _, err := repo.Reference(stateRef, true); err == nil {
		return nil // Already initialized
	}

	return s.Write(domain.NewState())
}

func writeBlob(repo *git.Repository, data []byte) (plumbing.Hash, error) {
	obj := repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}
	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}
	return hash, nil
}

func readBlob(repo *git.Repository, hash plumbing.Hash) ([]byte, error) {
	blob, err := repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}
	return data, nil
}

// Ensure Store implements the persistence ports.
var (
	_ domain.Store            = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
