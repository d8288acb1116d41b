package cli

import (
	"fmt"
	"time"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/spf13/cobra"
)

func newChartCmd(app *App) *cobra.Command {
	var window, date string
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart daily scores for a week or a month",
		Example: `  ember chart
  ember chart --window month
  ember chart --window week --date 2025-03-04`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !domain.ValidWindowKinds[window] {
				return fmt.Errorf("invalid --window %q (expected week or month)", window)
			}
			req := usecase.ChartRequest{
				Window: domain.WindowKind(window),
				Now:    app.nowPtr(),
			}
			if date != "" {
				ref, err := parseDate(date)
				if err != nil {
					return err
				}
				req.Reference = &ref
			}

			resp, err := app.Insights.Chart(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChart(resp)+"\n")
			return nil
		},
	}
	cmd.Flags().StringVar(&window, "window", string(domain.WindowWeek), "week or month")
	cmd.Flags().StringVar(&date, "date", "", "any day inside the window (YYYY-MM-DD, default today)")
	return cmd
}

// parseDate reads a YYYY-MM-DD calendar day.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
