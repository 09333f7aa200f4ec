package pages

import (
	"strings"

	"github.com/princemuel/jiraffe/internal/domain"
)

// StoryDetail shows one story, bound to both the story and its owning
// epic so delete can scrub the epic's story list.
type StoryDetail struct {
	EpicID  int
	StoryID int
}

// NewStoryDetail creates a detail page bound to the given story.
func NewStoryDetail(epicID, storyID int) *StoryDetail {
	return &StoryDetail{EpicID: epicID, StoryID: storyID}
}

// Render shows the story's fields.
func (p *StoryDetail) Render(state *domain.State) (string, error) {
	story, ok := state.Stories[p.StoryID]
	if !ok {
		return "", domain.StoryNotFound(p.StoryID)
	}

	var b strings.Builder
	b.WriteString(storyDetailHeader + "\n")
	b.WriteString(detailColumnHeader + "\n")
	b.WriteString(detailRow(p.StoryID, story.Name, story.Description, story.Status.Display()) + "\n")

	b.WriteString("\n\n[p] previous | [u] update story | [d] delete story\n")
	return b.String(), nil
}

// HandleInput maps a line to an action per the story detail grammar.
func (p *StoryDetail) HandleInput(line string, _ *domain.State) domain.Action {
	switch line {
	case "p":
		return domain.NavigateToPreviousPage{}
	case "u":
		return domain.UpdateStoryStatus{StoryID: p.StoryID}
	case "d":
		return domain.DeleteStory{EpicID: p.EpicID, StoryID: p.StoryID}
	}
	return nil
}

var _ Page = (*StoryDetail)(nil)
