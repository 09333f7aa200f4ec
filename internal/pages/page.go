// Package pages contains the renderable, input-handling views of the
// tracker. Each page is bound at construction to the ids it addresses
// and is a pure function of the state snapshot it is given.
package pages

import (
	"strconv"

	"github.com/princemuel/jiraffe/internal/domain"
)

// Page is one view in the navigation stack.
type Page interface {
	// Render produces the page's text from a state snapshot.
	// Detail pages fail if their target entity no longer exists.
	Render(state *domain.State) (string, error)

	// HandleInput parses one raw input line into zero or one action.
	// Unrecognized input yields nil; it is never an error.
	HandleInput(line string, state *domain.State) domain.Action
}

// parseID parses the whole line as an unsigned integer id.
// Trailing characters or surrounding whitespace must not match.
func parseID(line string) (int, bool) {
	id, err := strconv.ParseUint(line, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(id), true
}
