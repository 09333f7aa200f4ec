package pages

import (
	"testing"

	"github.com/princemuel/jiraffe/internal/domain"
	"github.com/princemuel/jiraffe/internal/testutil"
	"github.com/princemuel/jiraffe/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedState returns a snapshot with one epic (id 1) owning one story (id 2).
func seedState(t *testing.T) *domain.State {
	t.Helper()
	repo := tracker.NewRepository(testutil.NewMemStore())

	epicID, err := repo.CreateEpic(domain.NewEpic("epic", "epic desc"))
	require.NoError(t, err)
	require.Equal(t, 1, epicID)

	storyID, err := repo.CreateStory(domain.NewStory("story", "story desc"), epicID)
	require.NoError(t, err)
	require.Equal(t, 2, storyID)

	state, err := repo.Read()
	require.NoError(t, err)
	return state
}

func TestHomeRender(t *testing.T) {
	page := NewHome()

	out, err := page.Render(domain.NewState())
	require.NoError(t, err, "home never fails to render")
	assert.Contains(t, out, "EPICS")
	assert.Contains(t, out, "[q] quit | [c] create epic | [:id:] navigate to epic")

	out, err = page.Render(seedState(t))
	require.NoError(t, err)
	assert.Contains(t, out, "epic")
	assert.Contains(t, out, "OPEN")
}

func TestHomeHandleInput(t *testing.T) {
	state := seedState(t)
	page := NewHome()

	tests := []struct {
		name  string
		input string
		want  domain.Action
	}{
		{"quit", "q", domain.Exit{}},
		{"create", "c", domain.CreateEpic{}},
		{"valid epic id", "1", domain.NavigateToEpicDetail{EpicID: 1}},
		{"unknown epic id", "999", nil},
		{"junk", "j983f2j", nil},
		{"junk with valid prefix", "q983f2j", nil},
		{"trailing whitespace", "q\n", nil},
		{"negative id", "-1", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, page.HandleInput(tt.input, state))
		})
	}
}

func TestEpicDetailRender(t *testing.T) {
	state := seedState(t)

	out, err := NewEpicDetail(1).Render(state)
	require.NoError(t, err)
	assert.Contains(t, out, "EPIC")
	assert.Contains(t, out, "STORIES")
	assert.Contains(t, out, "epic desc")
	assert.Contains(t, out, "story")

	_, err = NewEpicDetail(999).Render(state)
	assert.ErrorIs(t, err, domain.ErrEpicNotFound)
}

func TestEpicDetailHandleInput(t *testing.T) {
	state := seedState(t)
	page := NewEpicDetail(1)

	tests := []struct {
		name  string
		input string
		want  domain.Action
	}{
		{"previous", "p", domain.NavigateToPreviousPage{}},
		{"update", "u", domain.UpdateEpicStatus{EpicID: 1}},
		{"delete", "d", domain.DeleteEpic{EpicID: 1}},
		{"create story", "c", domain.CreateStory{EpicID: 1}},
		{"valid story id", "2", domain.NavigateToStoryDetail{EpicID: 1, StoryID: 2}},
		{"unknown story id", "999", nil},
		{"junk", "j983f2j", nil},
		{"junk with valid prefix", "p983f2j", nil},
		{"trailing whitespace", "p\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, page.HandleInput(tt.input, state))
		})
	}
}

func TestEpicDetailHandleInputRejectsForeignStory(t *testing.T) {
	repo := tracker.NewRepository(testutil.NewMemStore())

	first, err := repo.CreateEpic(domain.NewEpic("a", ""))
	require.NoError(t, err)
	second, err := repo.CreateEpic(domain.NewEpic("b", ""))
	require.NoError(t, err)
	storyID, err := repo.CreateStory(domain.NewStory("s", ""), first)
	require.NoError(t, err)

	state, err := repo.Read()
	require.NoError(t, err)

	// The story exists but belongs to the first epic.
	page := NewEpicDetail(second)
	assert.Nil(t, page.HandleInput("3", state))
	assert.Equal(t, domain.NavigateToStoryDetail{EpicID: first, StoryID: storyID},
		NewEpicDetail(first).HandleInput("3", state))
}

func TestStoryDetailRender(t *testing.T) {
	state := seedState(t)

	out, err := NewStoryDetail(1, 2).Render(state)
	require.NoError(t, err)
	assert.Contains(t, out, "STORY")
	assert.Contains(t, out, "story desc")
	assert.Contains(t, out, "[p] previous | [u] update story | [d] delete story")

	_, err = NewStoryDetail(1, 999).Render(state)
	assert.ErrorIs(t, err, domain.ErrStoryNotFound)
}

func TestStoryDetailHandleInput(t *testing.T) {
	state := seedState(t)
	page := NewStoryDetail(1, 2)

	tests := []struct {
		name  string
		input string
		want  domain.Action
	}{
		{"previous", "p", domain.NavigateToPreviousPage{}},
		{"update", "u", domain.UpdateStoryStatus{StoryID: 2}},
		{"delete", "d", domain.DeleteStory{EpicID: 1, StoryID: 2}},
		{"numbers do nothing", "1", nil},
		{"junk", "j983f2j", nil},
		{"junk with valid prefix", "p983f2j", nil},
		{"trailing whitespace", "p\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, page.HandleInput(tt.input, state))
		})
	}
}
