package domain

import (
	"encoding/json"
	"fmt"
)

// Status represents the lifecycle state of an epic or story.
type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "InProgress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

// AllStatuses returns all valid status values in prompt order.
func AllStatuses() []Status {
	return []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	default:
		return false
	}
}

// Display returns the human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusOpen:
		return "OPEN"
	case StatusInProgress:
		return "IN PROGRESS"
	case StatusResolved:
		return "RESOLVED"
	case StatusClosed:
		return "CLOSED"
	default:
		return string(s)
	}
}

// ParseStatus converts a persisted tag back into a Status.
// Unknown tags are rejected so corrupt documents surface at decode time.
func ParseStatus(tag string) (Status, error) {
	s := Status(tag)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrCorruptState, tag)
	}
	return s, nil
}

// UnmarshalJSON decodes a status tag, rejecting unknown values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	parsed, err := ParseStatus(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
