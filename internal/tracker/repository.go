// Package tracker provides the CRUD service over the persisted state
// document, enforcing id allocation and referential cleanup.
package tracker

import (
	"github.com/princemuel/jiraffe/internal/domain"
)

// Repository exposes typed create/update/delete operations on epics and
// stories. Every operation is a whole-document read-modify-write round
// trip against the store; nothing is cached between calls, and no write
// happens unless validation passes.
type Repository struct {
	store domain.Store
}

// NewRepository creates a Repository backed by the given store.
func NewRepository(store domain.Store) *Repository {
	return &Repository{store: store}
}

// Read returns a snapshot of the current state document.
func (r *Repository) Read() (*domain.State, error) {
	return r.store.Read()
}

// CreateEpic inserts the epic under a freshly allocated id and returns it.
func (r *Repository) CreateEpic(epic domain.Epic) (int, error) {
	state, err := r.store.Read()
	if err != nil {
		return 0, err
	}

	state.LastItemID++
	id := state.LastItemID
	state.Epics[id] = epic

	if err := r.store.Write(state); err != nil {
		return 0, err
	}
	return id, nil
}

// CreateStory inserts the story under a freshly allocated id, appends the
// id to the owning epic's story list, and returns it.
func (r *Repository) CreateStory(story domain.Story, epicID int) (int, error) {
	state, err := r.store.Read()
	if err != nil {
		return 0, err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return 0, domain.EpicNotFound(epicID)
	}

	state.LastItemID++
	id := state.LastItemID
	state.Stories[id] = story
	epic.Stories = append(epic.Stories, id)
	state.Epics[epicID] = epic

	if err := r.store.Write(state); err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteEpic removes the epic and every story it owns.
// The id counter is never decremented; deleted ids are not reissued.
func (r *Repository) DeleteEpic(epicID int) error {
	state, err := r.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return domain.EpicNotFound(epicID)
	}

	for _, storyID := range epic.Stories {
		delete(state.Stories, storyID)
	}
	delete(state.Epics, epicID)

	return r.store.Write(state)
}

// DeleteStory removes the story and scrubs its id from the owning epic.
func (r *Repository) DeleteStory(epicID, storyID int) error {
	state, err := r.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return domain.EpicNotFound(epicID)
	}
	if _, ok := state.Stories[storyID]; !ok {
		return domain.StoryNotFound(storyID)
	}

	kept := epic.Stories[:0]
	for _, id := range epic.Stories {
		if id != storyID {
			kept = append(kept, id)
		}
	}
	epic.Stories = kept
	state.Epics[epicID] = epic
	delete(state.Stories, storyID)

	return r.store.Write(state)
}

// UpdateEpicStatus overwrites the epic's status field.
func (r *Repository) UpdateEpicStatus(epicID int, status domain.Status) error {
	state, err := r.store.Read()
	if err != nil {
		return err
	}

	epic, ok := state.Epics[epicID]
	if !ok {
		return domain.EpicNotFound(epicID)
	}
	epic.Status = status
	state.Epics[epicID] = epic

	return r.store.Write(state)
}

// UpdateStoryStatus overwrites the story's status field.
func (r *Repository) UpdateStoryStatus(storyID int, status domain.Status) error {
	state, err := r.store.Read()
	if err != nil {
		return err
	}

	story, ok := state.Stories[storyID]
	if !ok {
		return domain.StoryNotFound(storyID)
	}
	story.Status = status
	state.Stories[storyID] = story

	return r.store.Write(state)
}
