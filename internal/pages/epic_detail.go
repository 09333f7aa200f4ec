package pages

import (
	"strings"

	"github.com/princemuel/jiraffe/internal/domain"
)

// EpicDetail shows one epic and the stories it owns.
type EpicDetail struct {
	EpicID int
}

// NewEpicDetail creates a detail page bound to the given epic.
func NewEpicDetail(epicID int) *EpicDetail {
	return &EpicDetail{EpicID: epicID}
}

// Render shows the epic's fields and its surviving stories sorted by id.
func (p *EpicDetail) Render(state *domain.State) (string, error) {
	epic, ok := state.Epics[p.EpicID]
	if !ok {
		return "", domain.EpicNotFound(p.EpicID)
	}

	var b strings.Builder
	b.WriteString(epicDetailHeader + "\n")
	b.WriteString(detailColumnHeader + "\n")
	b.WriteString(detailRow(p.EpicID, epic.Name, epic.Description, epic.Status.Display()) + "\n")
	b.WriteString("\n")

	b.WriteString(storyTableHeader + "\n")
	b.WriteString(listColumnHeader + "\n")
	for _, id := range state.StoryIDs(epic) {
		story := state.Stories[id]
		b.WriteString(listRow(id, story.Name, story.Status.Display()) + "\n")
	}

	b.WriteString("\n\n[p] previous | [u] update epic | [d] delete epic | [c] create story | [:id:] navigate to story\n")
	return b.String(), nil
}

// HandleInput maps a line to an action per the epic detail grammar.
// Numeric navigation requires the story to be owned by this epic.
func (p *EpicDetail) HandleInput(line string, state *domain.State) domain.Action {
	switch line {
	case "p":
		return domain.NavigateToPreviousPage{}
	case "u":
		return domain.UpdateEpicStatus{EpicID: p.EpicID}
	case "d":
		return domain.DeleteEpic{EpicID: p.EpicID}
	case "c":
		return domain.CreateStory{EpicID: p.EpicID}
	}

	id, ok := parseID(line)
	if !ok {
		return nil
	}
	epic, exists := state.Epics[p.EpicID]
	if !exists || !epic.OwnsStory(id) {
		return nil
	}
	if _, exists := state.Stories[id]; !exists {
		return nil
	}
	return domain.NavigateToStoryDetail{EpicID: p.EpicID, StoryID: id}
}

var _ Page = (*EpicDetail)(nil)
