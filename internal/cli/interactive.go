package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/infra/prompt"
	"github.com/princemuel/jiraffe/internal/nav"
)

// runInteractive drives the render/input/dispatch cycle until the page
// stack is empty. Core failures are reported and the loop continues;
// only EOF on the input stream ends the session early.
func runInteractive(c *app.Container, in io.Reader, out io.Writer) error {
	if err := c.StoreInitializer.Initialize(); err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}

	// The loop and the prompts must share one buffered reader so prompt
	// answers are not swallowed by a second buffer.
	reader := bufio.NewReader(in)
	prompts := prompt.New(reader, out)
	navigator := nav.New(c.Tracker, prompts, c.Logger)

	for {
		page := navigator.CurrentPage()
		if page == nil {
			return nil
		}

		state, err := c.Tracker.Read()
		if err != nil {
			if cont := reportAndPause(reader, out, err); !cont {
				return nil
			}
			continue
		}

		text, err := page.Render(state)
		if err != nil {
			if cont := reportAndPause(reader, out, err); !cont {
				return nil
			}
			continue
		}
		_, _ = fmt.Fprintln(out, text)

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil // EOF
		}

		action := page.HandleInput(strings.TrimSpace(line), state)
		if action == nil {
			continue
		}

		if err := navigator.Dispatch(action); err != nil {
			c.Logger.Debug("dispatch failed", "error", err)
			if cont := reportAndPause(reader, out, err); !cont {
				return nil
			}
		}
	}
}

// reportAndPause prints the error and blocks until the user presses
// Enter, so a persistent error cannot spin the loop.
// Returns false once the input stream is exhausted.
func reportAndPause(reader *bufio.Reader, out io.Writer, err error) bool {
	_, _ = fmt.Fprintf(out, "Error: %v\nPress Enter to continue...\n", err)
	line, readErr := reader.ReadString('\n')
	return readErr == nil || line != ""
}
