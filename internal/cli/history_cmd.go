package cli

import (
	"fmt"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/spf13/cobra"
)

const maxHistoryDays = 366

func newHistoryCmd(app *App) *cobra.Command {
	req := usecase.NewHistoryRequest()
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent daily scores, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.Days < 1 || req.Days > maxHistoryDays {
				return fmt.Errorf("--days must be between 1 and %d", maxHistoryDays)
			}
			req.Now = app.nowPtr()
			resp, err := app.Insights.History(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(resp, app.Prefs.Location)+"\n")
			return nil
		},
	}
	cmd.Flags().IntVar(&req.Days, "days", req.Days, "number of calendar days to include, ending today")
	return cmd
}
