// Package testutil provides shared test utilities and mock implementations.
package testutil

import "github.com/princemuel/jiraffe/internal/domain"

// MemStore is an in-memory test double for domain.Store.
// It holds the last written document and clones on every read so callers
// cannot mutate the stored state behind the store's back.
type MemStore struct {
	State    *domain.State
	ReadErr  error
	WriteErr error
	Writes   int
}

// NewMemStore creates a MemStore holding an empty document.
func NewMemStore() *MemStore {
	return &MemStore{State: domain.NewState()}
}

// Read returns a copy of the last written document.
func (m *MemStore) Read() (*domain.State, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	return m.State.Clone(), nil
}

// Write replaces the stored document.
func (m *MemStore) Write(state *domain.State) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.State = state.Clone()
	m.Writes++
	return nil
}

// Initialize is a no-op; the store is always present.
func (m *MemStore) Initialize() error {
	return nil
}

// MockPrompter is a test double for domain.Prompter.
// Unset fields fall back to zero values (empty items, declined prompts).
type MockPrompter struct {
	EpicFn         func() domain.Epic
	StoryFn        func() domain.Story
	ConfirmEpicFn  func() bool
	ConfirmStoryFn func() bool
	StatusFn       func() (domain.Status, bool)
}

// CollectEpic returns the configured epic.
func (m *MockPrompter) CollectEpic() domain.Epic {
	if m.EpicFn == nil {
		return domain.NewEpic("", "")
	}
	return m.EpicFn()
}

// CollectStory returns the configured story.
func (m *MockPrompter) CollectStory() domain.Story {
	if m.StoryFn == nil {
		return domain.NewStory("", "")
	}
	return m.StoryFn()
}

// ConfirmEpicDelete returns the configured answer.
func (m *MockPrompter) ConfirmEpicDelete() bool {
	return m.ConfirmEpicFn != nil && m.ConfirmEpicFn()
}

// ConfirmStoryDelete returns the configured answer.
func (m *MockPrompter) ConfirmStoryDelete() bool {
	return m.ConfirmStoryFn != nil && m.ConfirmStoryFn()
}

// CollectStatus returns the configured status.
func (m *MockPrompter) CollectStatus() (domain.Status, bool) {
	if m.StatusFn == nil {
		return "", false
	}
	return m.StatusFn()
}

// Interface guards.
var (
	_ domain.Store            = (*MemStore)(nil)
	_ domain.StoreInitializer = (*MemStore)(nil)
	_ domain.Prompter         = (*MockPrompter)(nil)
)
