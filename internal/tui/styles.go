package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/princemuel/jiraffe/internal/domain"
)

// Colors defines the color palette for the board.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Selected   lipgloss.Color
	Open       lipgloss.Color
	InProgress lipgloss.Color
	Resolved   lipgloss.Color
	Closed     lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Selected:   lipgloss.Color("#FFEAA7"), // Yellow
	Open:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Resolved:   lipgloss.Color("#00B894"), // Green
	Closed:     lipgloss.Color("#636E72"), // Gray
}

// Styles holds the lipgloss styles used by the views.
type Styles struct {
	App         lipgloss.Style
	Header      lipgloss.Style
	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	Muted       lipgloss.Style
	ErrorMsg    lipgloss.Style
	Footer      lipgloss.Style
	InputPrompt lipgloss.Style
	Dialog      lipgloss.Style
}

// DefaultStyles returns the default board styles.
func DefaultStyles() Styles {
	return Styles{
		App:         lipgloss.NewStyle().Padding(1, 2),
		Header:      lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		Row:         lipgloss.NewStyle(),
		SelectedRow: lipgloss.NewStyle().Bold(true).Foreground(Colors.Selected),
		Muted:       lipgloss.NewStyle().Foreground(Colors.Muted),
		ErrorMsg:    lipgloss.NewStyle().Foreground(Colors.Error),
		Footer:      lipgloss.NewStyle().Foreground(Colors.Muted),
		InputPrompt: lipgloss.NewStyle().Bold(true),
		Dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// StatusStyle returns the style for a status badge.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusOpen:
		return lipgloss.NewStyle().Foreground(Colors.Open)
	case domain.StatusInProgress:
		return lipgloss.NewStyle().Foreground(Colors.InProgress)
	case domain.StatusResolved:
		return lipgloss.NewStyle().Foreground(Colors.Resolved)
	case domain.StatusClosed:
		return lipgloss.NewStyle().Foreground(Colors.Closed)
	default:
		return lipgloss.NewStyle()
	}
}
