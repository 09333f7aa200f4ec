package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/princemuel/jiraffe/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgStateLoaded:
		m.state = msg.State
		m.err = nil
		if m.level == LevelStories {
			if _, ok := m.state.Epics[m.currentEpic]; !ok {
				m.level = LevelEpics
			}
		}
		m.clampCursor()
		return m, nil

	case MsgMutated:
		m.mode = ModeNormal
		return m, m.loadState()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputName, ModeInputDesc:
		return m.handleInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeStatus:
		return m.handleStatusKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Enter):
		if m.level == LevelEpics {
			if id, ok := m.selectedID(); ok {
				m.level = LevelStories
				m.currentEpic = id
				m.cursor = 0
			}
		}

	case key.Matches(msg, m.keys.Back):
		if m.level == LevelStories {
			m.level = LevelEpics
			m.cursor = 0
		}

	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputName
		m.nameInput.Reset()
		m.descInput.Reset()
		return m, m.nameInput.Focus()

	case key.Matches(msg, m.keys.Delete):
		if _, ok := m.selectedID(); ok {
			m.mode = ModeConfirm
		}

	case key.Matches(msg, m.keys.Status):
		if _, ok := m.selectedID(); ok {
			m.mode = ModeStatus
			m.statusCursor = 0
		}
	}

	return m, nil
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.nameInput.Blur()
		m.descInput.Blur()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.mode == ModeInputName {
			m.pendingName = m.nameInput.Value()
			m.mode = ModeInputDesc
			m.nameInput.Blur()
			return m, m.descInput.Focus()
		}
		desc := m.descInput.Value()
		m.descInput.Blur()
		if m.level == LevelEpics {
			return m, m.createEpic(m.pendingName, desc)
		}
		return m, m.createStory(m.pendingName, desc, m.currentEpic)
	}

	var cmd tea.Cmd
	if m.mode == ModeInputName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id, ok := m.selectedID()
		if !ok {
			m.mode = ModeNormal
			return m, nil
		}
		if m.level == LevelEpics {
			return m, m.deleteEpic(id)
		}
		return m, m.deleteStory(m.currentEpic, id)
	default:
		m.mode = ModeNormal
		return m, nil
	}
}

func (m *Model) handleStatusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	statuses := domain.AllStatuses()

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.statusCursor > 0 {
			m.statusCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.statusCursor < len(statuses)-1 {
			m.statusCursor++
		}

	case msg.Type == tea.KeyEnter:
		id, ok := m.selectedID()
		if !ok {
			m.mode = ModeNormal
			return m, nil
		}
		return m, m.updateStatus(id, statuses[m.statusCursor])
	}

	return m, nil
}

// Mutation commands. Each round-trips through the repository and reports
// either MsgMutated or MsgError.

func (m *Model) createEpic(name, desc string) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.repo.CreateEpic(domain.NewEpic(name, desc)); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{}
	}
}

func (m *Model) createStory(name, desc string, epicID int) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.repo.CreateStory(domain.NewStory(name, desc), epicID); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{}
	}
}

func (m *Model) deleteEpic(id int) tea.Cmd {
	return func() tea.Msg {
		if err := m.repo.DeleteEpic(id); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{}
	}
}

func (m *Model) deleteStory(epicID, storyID int) tea.Cmd {
	return func() tea.Msg {
		if err := m.repo.DeleteStory(epicID, storyID); err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{}
	}
}

func (m *Model) updateStatus(id int, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		var err error
		if m.level == LevelEpics {
			err = m.repo.UpdateEpicStatus(id, status)
		} else {
			err = m.repo.UpdateStoryStatus(id, status)
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{}
	}
}
