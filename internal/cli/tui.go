package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/princemuel/jiraffe/internal/app"
	"github.com/princemuel/jiraffe/internal/tui"
)

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Open the full-screen board",
		GroupID: groupTracker,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.StoreInitializer.Initialize(); err != nil {
				return err
			}
			p := tea.NewProgram(tui.New(c.Tracker), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run board: %w", err)
			}
			return nil
		},
	}
}
