// Package nav owns the page stack and dispatches parsed actions to the
// repository and the stack.
package nav

import (
	"fmt"
	"log/slog"

	"github.com/princemuel/jiraffe/internal/domain"
	"github.com/princemuel/jiraffe/internal/pages"
	"github.com/princemuel/jiraffe/internal/tracker"
)

// Navigator is the navigation state machine. The stack starts with the
// home page; the machine is terminal once the stack is empty.
type Navigator struct {
	repo    *tracker.Repository
	prompts domain.Prompter
	logger  *slog.Logger
	stack   []pages.Page
}

// New creates a Navigator with the home page on the stack.
func New(repo *tracker.Repository, prompts domain.Prompter, logger *slog.Logger) *Navigator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Navigator{
		repo:    repo,
		prompts: prompts,
		logger:  logger,
		stack:   []pages.Page{pages.NewHome()},
	}
}

// CurrentPage returns the top of the stack, or nil in the terminal state.
func (n *Navigator) CurrentPage() pages.Page {
	if len(n.stack) == 0 {
		return nil
	}
	return n.stack[len(n.stack)-1]
}

// PageCount returns the stack depth.
func (n *Navigator) PageCount() int {
	return len(n.stack)
}

// Dispatch applies one action: navigation actions move the page stack,
// data actions collect input through the prompter and call the
// repository. Repository failures propagate without touching the stack.
func (n *Navigator) Dispatch(action domain.Action) error {
	switch a := action.(type) {
	case domain.NavigateToEpicDetail:
		n.push(pages.NewEpicDetail(a.EpicID))

	case domain.NavigateToStoryDetail:
		n.push(pages.NewStoryDetail(a.EpicID, a.StoryID))

	case domain.NavigateToPreviousPage:
		n.pop()

	case domain.CreateEpic:
		epic := n.prompts.CollectEpic()
		id, err := n.repo.CreateEpic(epic)
		if err != nil {
			return fmt.Errorf("create epic: %w", err)
		}
		n.logger.Debug("epic created", "id", id)

	case domain.CreateStory:
		story := n.prompts.CollectStory()
		id, err := n.repo.CreateStory(story, a.EpicID)
		if err != nil {
			return fmt.Errorf("create story: %w", err)
		}
		n.logger.Debug("story created", "id", id, "epic", a.EpicID)

	case domain.UpdateEpicStatus:
		status, ok := n.prompts.CollectStatus()
		if !ok {
			return nil
		}
		if err := n.repo.UpdateEpicStatus(a.EpicID, status); err != nil {
			return fmt.Errorf("update epic %d: %w", a.EpicID, err)
		}

	case domain.UpdateStoryStatus:
		status, ok := n.prompts.CollectStatus()
		if !ok {
			return nil
		}
		if err := n.repo.UpdateStoryStatus(a.StoryID, status); err != nil {
			return fmt.Errorf("update story %d: %w", a.StoryID, err)
		}

	case domain.DeleteEpic:
		if !n.prompts.ConfirmEpicDelete() {
			return nil
		}
		if err := n.repo.DeleteEpic(a.EpicID); err != nil {
			return fmt.Errorf("delete epic %d: %w", a.EpicID, err)
		}
		n.pop()

	case domain.DeleteStory:
		if !n.prompts.ConfirmStoryDelete() {
			return nil
		}
		if err := n.repo.DeleteStory(a.EpicID, a.StoryID); err != nil {
			return fmt.Errorf("delete story %d: %w", a.StoryID, err)
		}
		n.pop()

	case domain.Exit:
		n.stack = nil
	}

	return nil
}

func (n *Navigator) push(p pages.Page) {
	n.stack = append(n.stack, p)
}

// pop removes the top page; popping an empty stack is a no-op.
func (n *Navigator) pop() {
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
}
