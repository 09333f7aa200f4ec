package pages

import (
	"strings"

	"github.com/princemuel/jiraffe/internal/domain"
)

// Home lists all epics. It is the root of the navigation stack and the
// only page that cannot fail to render.
type Home struct{}

// NewHome creates the home page.
func NewHome() *Home {
	return &Home{}
}

// Render lists the epics sorted by id.
func (p *Home) Render(state *domain.State) (string, error) {
	var b strings.Builder
	b.WriteString(epicTableHeader + "\n")
	b.WriteString(listColumnHeader + "\n")

	for _, id := range state.EpicIDs() {
		epic := state.Epics[id]
		b.WriteString(listRow(id, epic.Name, epic.Status.Display()) + "\n")
	}

	b.WriteString("\n\n[q] quit | [c] create epic | [:id:] navigate to epic\n")
	return b.String(), nil
}

// HandleInput maps a line to an action per the home page grammar.
func (p *Home) HandleInput(line string, state *domain.State) domain.Action {
	switch line {
	case "q":
		return domain.Exit{}
	case "c":
		return domain.CreateEpic{}
	}

	id, ok := parseID(line)
	if !ok {
		return nil
	}
	if _, exists := state.Epics[id]; !exists {
		return nil
	}
	return domain.NavigateToEpicDetail{EpicID: id}
}

var _ Page = (*Home)(nil)
