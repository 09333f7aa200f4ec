package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/domain"
)

// newStoryCommand creates the story command with its subcommands.
func newStoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "story",
		Short:   "Manage stories",
		GroupID: groupTracker,
	}

	cmd.AddCommand(
		newStoryNewCommand(c),
		newStoryStatusCommand(c),
		newStoryDeleteCommand(c),
	)

	return cmd
}

func newStoryNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		EpicID      int
		Name        string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new story under an epic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := c.Tracker.CreateStory(domain.NewStory(opts.Name, opts.Description), opts.EpicID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created story #%d in epic #%d\n", id, opts.EpicID)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.EpicID, "epic", 0, "Owning epic id (required)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Story name (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Story description")
	_ = cmd.MarkFlagRequired("epic")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStoryStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update a story's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}
			status, err := statusFromArg(args[1])
			if err != nil {
				return err
			}
			if err := c.Tracker.UpdateStoryStatus(id, status); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Story #%d is now %s\n", id, status.Display())
			return nil
		},
	}
}

func newStoryDeleteCommand(c *app.Container) *cobra.Command {
	var epicID int

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a story",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid story id %q", args[0])
			}
			if err := c.Tracker.DeleteStory(epicID, id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted story #%d\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&epicID, "epic", 0, "Owning epic id (required)")
	_ = cmd.MarkFlagRequired("epic")

	return cmd
}
