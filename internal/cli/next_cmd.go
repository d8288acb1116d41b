package cli

import (
	"errors"
	"fmt"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show when the next check-in is due",
		Long: `Show the next check-in time from the checkin_cron schedule and whether
today's check-in is already done. ember does not send notifications.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cadence == nil {
				return errors.New("no check-in schedule configured (set checkin_cron)")
			}
			now := app.now()
			view, err := app.CheckIn.Today(cmd.Context(), usecase.TodayRequest{Now: &now})
			if err != nil {
				return err
			}
			st := app.Cadence.Status(now, view.CompletedToday)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatNext(st, app.Cadence.Spec(), now)+"\n")
			return nil
		},
	}
}
