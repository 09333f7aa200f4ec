package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "init",
		Short:   "Create the tracker data store",
		GroupID: groupSetup,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.StoreInitializer.Initialize(); err != nil {
				return err
			}
			if c.Paths.StorePath != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized jiraffe store at %s\n", c.Paths.StorePath)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Initialized jiraffe store")
			}
			return nil
		},
	}
}
