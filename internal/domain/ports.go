package domain

// Store is the whole-document persistence boundary.
type Store interface {
	// Read loads the entire state document.
	// Returns ErrNotInitialized if the backing resource does not exist
	// and ErrCorruptState if it exists but cannot be decoded.
	Read() (*State, error)

	// Write replaces the entire persisted document.
	Write(state *State) error
}

// StoreInitializer creates the backing resource if it doesn't exist.
type StoreInitializer interface {
	Initialize() error
}

// Prompter collects values from the user during action dispatch.
// Implementations are thin I/O wrappers with no state of their own.
type Prompter interface {
	// CollectEpic prompts for a new epic's name and description.
	CollectEpic() Epic

	// CollectStory prompts for a new story's name and description.
	CollectStory() Story

	// ConfirmEpicDelete asks for confirmation before a cascading delete.
	ConfirmEpicDelete() bool

	// ConfirmStoryDelete asks for confirmation before deleting a story.
	ConfirmStoryDelete() bool

	// CollectStatus prompts for a new status.
	// ok is false if the user declined to pick one.
	CollectStatus() (status Status, ok bool)
}
