package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse charts interactively",
		Long: `Open a full-screen view with the weekly trend above a bar chart.
tab switches week/month, ←/→ page through time, t jumps to today, r reloads, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive {
				return errors.New("dashboard needs an interactive terminal; try 'ember chart'")
			}
			_, err := tea.NewProgram(newDashboardView(app), tea.WithAltScreen()).Run()
			return err
		},
	}
}
