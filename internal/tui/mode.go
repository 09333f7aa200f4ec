// Package tui provides the full-screen board interface for jiraffe.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal    Mode = iota // Default navigation mode
	ModeInputName             // Name input (first step of create)
	ModeInputDesc             // Description input (second step of create)
	ModeConfirm               // Delete confirmation dialog
	ModeStatus                // Status picker
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputName:
		return "input_name"
	case ModeInputDesc:
		return "input_desc"
	case ModeConfirm:
		return "confirm"
	case ModeStatus:
		return "status"
	default:
		return "unknown"
	}
}

// Level is the drill-down depth of the board.
type Level int

const (
	LevelEpics   Level = iota // Browsing all epics
	LevelStories              // Browsing one epic's stories
)
