package domain

import "sort"

// State is the single persisted document: the shared id counter and both
// entity maps. Integer map keys encode as JSON object keys ("1", "2", ...).
type State struct {
	LastItemID int           `json:"last_item_id" yaml:"last_item_id"`
	Epics      map[int]Epic  `json:"epics" yaml:"epics"`
	Stories    map[int]Story `json:"stories" yaml:"stories"`
}

// NewState returns an empty document with the counter at zero.
func NewState() *State {
	return &State{
		LastItemID: 0,
		Epics:      make(map[int]Epic),
		Stories:    make(map[int]Story),
	}
}

// Validate checks the decoded document for the required shape.
// A document missing either entity map is corrupt.
func (s *State) Validate() error {
	if s.Epics == nil || s.Stories == nil {
		return ErrCorruptState
	}
	if s.LastItemID < 0 {
		return ErrCorruptState
	}
	return nil
}

// EpicIDs returns the epic ids in ascending order.
func (s *State) EpicIDs() []int {
	ids := make([]int, 0, len(s.Epics))
	for id := range s.Epics {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// StoryIDs returns the ids of the epic's stories that still exist in the
// stories map, in ascending order. Dangling references are skipped.
func (s *State) StoryIDs(epic Epic) []int {
	ids := make([]int, 0, len(epic.Stories))
	for _, id := range epic.Stories {
		if _, ok := s.Stories[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Clone returns a deep copy of the document.
func (s *State) Clone() *State {
	out := &State{
		LastItemID: s.LastItemID,
		Epics:      make(map[int]Epic, len(s.Epics)),
		Stories:    make(map[int]Story, len(s.Stories)),
	}
	for id, e := range s.Epics {
		stories := make([]int, len(e.Stories))
		copy(stories, e.Stories)
		e.Stories = stories
		out.Epics[id] = e
	}
	for id, st := range s.Stories {
		out.Stories[id] = st
	}
	return out
}
