package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/domain"
)

// newEpicCommand creates the epic command with its subcommands.
func newEpicCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "epic",
		Short:   "Manage epics",
		GroupID: groupTracker,
	}

	cmd.AddCommand(
		newEpicNewCommand(c),
		newEpicListCommand(c),
		newEpicStatusCommand(c),
		newEpicDeleteCommand(c),
	)

	return cmd
}

func newEpicNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Name        string
		Description string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new epic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := c.Tracker.CreateEpic(domain.NewEpic(opts.Name, opts.Description))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created epic #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Epic name (required)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Epic description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newEpicListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all epics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.Tracker.Read()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS\tSTORIES")
			for _, id := range state.EpicIDs() {
				epic := state.Epics[id]
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", id, epic.Name, epic.Status.Display(), len(epic.Stories))
			}
			return w.Flush()
		},
	}
}

func newEpicStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Update an epic's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid epic id %q", args[0])
			}
			status, err := statusFromArg(args[1])
			if err != nil {
				return err
			}
			if err := c.Tracker.UpdateEpicStatus(id, status); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Epic #%d is now %s\n", id, status.Display())
			return nil
		},
	}
}

func newEpicDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an epic and all its stories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid epic id %q", args[0])
			}
			if err := c.Tracker.DeleteEpic(id); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted epic #%d\n", id)
			return nil
		},
	}
}
