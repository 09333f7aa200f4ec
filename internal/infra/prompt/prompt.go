// Package prompt implements the interactive prompt capabilities over a
// line-based reader and writer.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/princemuel/jiraffe/internal/domain"
)

const divider = "----------------------------"

// Prompter collects epics, stories, confirmations and statuses from a
// line-oriented stream, normally stdin/stdout.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *Prompter) readLine() string {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

func (p *Prompter) println(s string) {
	_, _ = fmt.Fprintln(p.out, s)
}

// CollectEpic prompts for a new epic's name and description.
func (p *Prompter) CollectEpic() domain.Epic {
	p.println(divider)
	p.println("Epic Name:")
	name := p.readLine()
	p.println("Epic Description:")
	desc := p.readLine()
	return domain.NewEpic(name, desc)
}

// CollectStory prompts for a new story's name and description.
func (p *Prompter) CollectStory() domain.Story {
	p.println(divider)
	p.println("Story Name:")
	name := p.readLine()
	p.println("Story Description:")
	desc := p.readLine()
	return domain.NewStory(name, desc)
}

// ConfirmEpicDelete asks for confirmation before a cascading delete.
func (p *Prompter) ConfirmEpicDelete() bool {
	p.println(divider)
	p.println("Are you sure you want to delete this epic? All stories in this epic will also be deleted [Y/n]:")
	return strings.EqualFold(p.readLine(), "y")
}

// ConfirmStoryDelete asks for confirmation before deleting a story.
func (p *Prompter) ConfirmStoryDelete() bool {
	p.println(divider)
	p.println("Are you sure you want to delete this story? [Y/n]:")
	return strings.EqualFold(p.readLine(), "y")
}

// CollectStatus prompts for a new status by number.
// Any answer other than 1-4 declines the update.
func (p *Prompter) CollectStatus() (domain.Status, bool) {
	p.println(divider)
	p.println("New Status (1 - OPEN, 2 - IN-PROGRESS, 3 - RESOLVED, 4 - CLOSED):")
	switch p.readLine() {
	case "1":
		return domain.StatusOpen, true
	case "2":
		return domain.StatusInProgress, true
	case "3":
		return domain.StatusResolved, true
	case "4":
		return domain.StatusClosed, true
	default:
		return "", false
	}
}

var _ domain.Prompter = (*Prompter)(nil)
