// Package cli provides the command-line interface for jiraffe.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/domain"
)

// Command group IDs.
const (
	groupSetup   = "setup"
	groupTracker = "tracker"
)

// NewRootCommand creates the root command for jiraffe.
// Running it without a subcommand starts the interactive page loop.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "jiraffe",
		Short: "Terminal issue tracker for epics and stories",
		Long: `jiraffe is a terminal issue tracker. Work is organized as epics,
each owning an ordered list of stories, persisted as a single JSON
document. Run without arguments for the interactive page navigator,
or use the subcommands for scripting.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(c, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTracker, Title: "Tracker Commands:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newEpicCommand(c),
		newStoryCommand(c),
		newListCommand(c),
		newExportCommand(c),
		newTUICommand(c),
	)

	return root
}

// statusFromArg parses a user-supplied status name.
func statusFromArg(arg string) (domain.Status, error) {
	switch strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(arg, "-", ""), "_", "")) {
	case "open":
		return domain.StatusOpen, nil
	case "inprogress":
		return domain.StatusInProgress, nil
	case "resolved":
		return domain.StatusResolved, nil
	case "closed":
		return domain.StatusClosed, nil
	default:
		return "", fmt.Errorf("unknown status %q (want open, in-progress, resolved or closed)", arg)
	}
}
