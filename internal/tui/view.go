package tui

import (
	"fmt"
	"strings"

	"github.com/princemuel/jiraffe/internal/domain"
)

// View renders the board.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.styles.Header.Render(m.headerText()))
	b.WriteString("\n\n")
	b.WriteString(m.renderRows())

	switch m.mode {
	case ModeInputName, ModeInputDesc:
		b.WriteString("\n")
		b.WriteString(m.renderInputDialog())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.renderConfirmDialog())
	case ModeStatus:
		b.WriteString("\n")
		b.WriteString(m.renderStatusDialog())
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Footer.Render(m.footerText()))

	return m.styles.App.Render(b.String())
}

func (m *Model) headerText() string {
	if m.level == LevelEpics {
		return "EPICS"
	}
	if epic, ok := m.state.Epics[m.currentEpic]; ok {
		return fmt.Sprintf("STORIES IN %d: %s", m.currentEpic, epic.Name)
	}
	return "STORIES"
}

func (m *Model) renderRows() string {
	rows := m.rows()
	if len(rows) == 0 {
		return m.styles.Muted.Render("  (empty)")
	}

	var b strings.Builder
	for i, id := range rows {
		name, status := m.rowData(id)
		cursor := "  "
		style := m.styles.Row
		if i == m.cursor {
			cursor = "> "
			style = m.styles.SelectedRow
		}
		line := fmt.Sprintf("%s%-4d %-40s ", cursor, id, truncate(name, 40))
		b.WriteString(style.Render(line))
		b.WriteString(m.styles.StatusStyle(status).Render(status.Display()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) rowData(id int) (string, domain.Status) {
	if m.level == LevelEpics {
		epic := m.state.Epics[id]
		return epic.Name, epic.Status
	}
	story := m.state.Stories[id]
	return story.Name, story.Status
}

func (m *Model) renderInputDialog() string {
	label := "New epic"
	if m.level == LevelStories {
		label = "New story"
	}
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render(label))
	b.WriteString("\n")
	if m.mode == ModeInputName {
		b.WriteString(m.nameInput.View())
	} else {
		b.WriteString(m.descInput.View())
	}
	return m.styles.Dialog.Render(b.String())
}

func (m *Model) renderConfirmDialog() string {
	kind := "epic"
	if m.level == LevelStories {
		kind = "story"
	}
	id, _ := m.selectedID()
	text := fmt.Sprintf("Delete %s %d? [y/N]", kind, id)
	return m.styles.Dialog.Render(m.styles.InputPrompt.Render(text))
}

func (m *Model) renderStatusDialog() string {
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render("Set status"))
	b.WriteString("\n")
	for i, status := range domain.AllStatuses() {
		cursor := "  "
		style := m.styles.Row
		if i == m.statusCursor {
			cursor = "> "
			style = m.styles.SelectedRow
		}
		b.WriteString(style.Render(cursor + status.Display()))
		b.WriteString("\n")
	}
	return m.styles.Dialog.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) footerText() string {
	switch m.mode {
	case ModeInputName, ModeInputDesc:
		return "enter: next  esc: cancel"
	case ModeConfirm:
		return "y: confirm  esc: cancel"
	case ModeStatus:
		return "up/down: select  enter: apply  esc: cancel"
	}
	if m.level == LevelEpics {
		return "up/down: move  enter: open  n: new  u: status  d: delete  q: quit"
	}
	return "up/down: move  backspace: back  n: new  u: status  d: delete  q: quit"
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return strings.Repeat(".", max)
	}
	return s[:max-3] + "..."
}
