package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotInitialized = errors.New("tracker not initialized (run 'jiraffe init' first)")
	ErrCorruptState   = errors.New("tracker data is corrupt")
	ErrEpicNotFound   = errors.New("epic not found")
	ErrStoryNotFound  = errors.New("story not found")
)

// EpicNotFound wraps ErrEpicNotFound with the offending id.
func EpicNotFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrEpicNotFound, id)
}

// StoryNotFound wraps ErrStoryNotFound with the offending id.
func StoryNotFound(id int) error {
	return fmt.Errorf("%w: id %d", ErrStoryNotFound, id)
}
