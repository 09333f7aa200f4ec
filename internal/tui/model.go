package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/princemuel/jiraffe/internal/domain"
	"github.com/princemuel/jiraffe/internal/tracker"
)

// Model is the main bubbletea model for the board.
type Model struct {
	repo  *tracker.Repository
	state *domain.State
	err   error

	keys   KeyMap
	styles Styles

	nameInput textinput.Model
	descInput textinput.Model

	mode         Mode
	level        Level
	cursor       int
	currentEpic  int // epic id at LevelStories
	statusCursor int
	width        int
	height       int

	// Pending create carried between the name and description steps.
	pendingName string
}

// New creates a board Model over the given repository.
func New(repo *tracker.Repository) *Model {
	ni := textinput.New()
	ni.Placeholder = "Name"
	ni.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "Description (optional)"
	di.CharLimit = 1000

	return &Model{
		repo:      repo,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		nameInput: ni,
		descInput: di,
		mode:      ModeNormal,
		level:     LevelEpics,
	}
}

// Init loads the first state snapshot.
func (m *Model) Init() tea.Cmd {
	return m.loadState()
}

// loadState returns a command that reads a fresh snapshot.
func (m *Model) loadState() tea.Cmd {
	return func() tea.Msg {
		state, err := m.repo.Read()
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgStateLoaded{State: state}
	}
}

// rows returns the ids listed at the current level, in display order.
func (m *Model) rows() []int {
	if m.state == nil {
		return nil
	}
	if m.level == LevelEpics {
		return m.state.EpicIDs()
	}
	epic, ok := m.state.Epics[m.currentEpic]
	if !ok {
		return nil
	}
	return m.state.StoryIDs(epic)
}

// selectedID returns the id under the cursor, or false if the list is empty.
func (m *Model) selectedID() (int, bool) {
	rows := m.rows()
	if len(rows) == 0 || m.cursor >= len(rows) {
		return 0, false
	}
	return rows[m.cursor], true
}

// clampCursor keeps the cursor inside the current row list.
func (m *Model) clampCursor() {
	rows := m.rows()
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
