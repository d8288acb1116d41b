package cli

import (
	"github.com/alexanderramin/ember/internal/mcpserver"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run a Model Context Protocol server over stdio exposing the tools
burnout_today, burnout_checkin, burnout_chart, burnout_trend and burnout_history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Serve(app.mcpDeps())
		},
	}
}
