package cli

import (
	"fmt"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTrendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trend",
		Short: "Classify the last seven days as low or high risk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Insights.Trend(cmd.Context(), usecase.TrendRequest{Now: app.nowPtr()})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrend(resp)+"\n")
			return nil
		},
	}
}
