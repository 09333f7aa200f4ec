package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/princemuel/jiraffe/internal/app"
)

// newExportCommand creates the export command, dumping a snapshot of the
// state document to stdout.
func newExportCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the tracker state",
		GroupID: groupTracker,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.Tracker.Read()
			if err != nil {
				return err
			}

			switch format {
			case "json":
				content, err := json.MarshalIndent(state, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal state: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(content))
			case "yaml":
				content, err := yaml.Marshal(state)
				if err != nil {
					return fmt.Errorf("marshal state: %w", err)
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), string(content))
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format (json or yaml)")

	return cmd
}
