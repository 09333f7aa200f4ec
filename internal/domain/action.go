package domain

// Action is the sealed interface for parsed user intents. Pages produce
// actions from raw input; only the navigator consumes them.
//
// go-sumtype:decl Action
type Action interface {
	sealed()
}

// NavigateToEpicDetail pushes the detail page for an epic.
type NavigateToEpicDetail struct {
	EpicID int
}

func (NavigateToEpicDetail) sealed() {}

// NavigateToStoryDetail pushes the detail page for a story.
type NavigateToStoryDetail struct {
	EpicID  int
	StoryID int
}

func (NavigateToStoryDetail) sealed() {}

// NavigateToPreviousPage pops the current page.
type NavigateToPreviousPage struct{}

func (NavigateToPreviousPage) sealed() {}

// CreateEpic collects a new epic and persists it.
type CreateEpic struct{}

func (CreateEpic) sealed() {}

// CreateStory collects a new story under the given epic and persists it.
type CreateStory struct {
	EpicID int
}

func (CreateStory) sealed() {}

// UpdateEpicStatus collects a new status for the given epic.
type UpdateEpicStatus struct {
	EpicID int
}

func (UpdateEpicStatus) sealed() {}

// UpdateStoryStatus collects a new status for the given story.
type UpdateStoryStatus struct {
	StoryID int
}

func (UpdateStoryStatus) sealed() {}

// DeleteEpic deletes the given epic (and its stories) after confirmation.
type DeleteEpic struct {
	EpicID int
}

func (DeleteEpic) sealed() {}

// DeleteStory deletes the given story after confirmation.
type DeleteStory struct {
	EpicID  int
	StoryID int
}

func (DeleteStory) sealed() {}

// Exit clears the page stack and ends the session.
type Exit struct{}

func (Exit) sealed() {}
