package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
)

// newListCommand creates the list command showing the full tree of epics
// and their stories.
func newListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   "List all epics with their stories",
		GroupID: groupTracker,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.Tracker.Read()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTATUS")
			for _, epicID := range state.EpicIDs() {
				epic := state.Epics[epicID]
				_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", epicID, epic.Name, epic.Status.Display())
				for _, storyID := range state.StoryIDs(epic) {
					story := state.Stories[storyID]
					_, _ = fmt.Fprintf(w, "%d\t  %s\t%s\n", storyID, story.Name, story.Status.Display())
				}
			}
			return w.Flush()
		},
	}
}
