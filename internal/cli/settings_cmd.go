package cli

import (
	"fmt"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showSettings(cmd, app)
		},
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show work days, week start, time zone and rotation",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return showSettings(cmd, app)
			},
		},
		newSettingsWorkDaysCmd(app),
	)
	return cmd
}

func showSettings(cmd *cobra.Command, app *App) error {
	view, err := app.Settings.Show(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSettings(view)+"\n")
	return nil
}

func newSettingsWorkDaysCmd(app *App) *cobra.Command {
	var days domain.WorkWeek
	cmd := &cobra.Command{
		Use:   "workdays",
		Short: "Choose which weekdays are work days",
		Example: `  ember settings workdays --days sun,mon,tue,wed,thu
  ember settings workdays --days mon --days fri`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.SetWorkDays(cmd.Context(), days); err != nil {
				return err
			}
			return showSettings(cmd, app)
		},
	}
	cmd.Flags().Var(newWorkWeekValue(&days), "days", "comma-separated weekdays, repeatable (e.g. mon,tue)")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

// workWeekValue is a pflag.Value collecting weekday names into a WorkWeek.
// Repeated flags add to the set.
type workWeekValue struct {
	target *domain.WorkWeek
	set    bool
}

var _ pflag.Value = (*workWeekValue)(nil)

func newWorkWeekValue(target *domain.WorkWeek) *workWeekValue {
	return &workWeekValue{target: target}
}

func (v *workWeekValue) String() string {
	if v.target == nil {
		return ""
	}
	return v.target.String()
}

func (v *workWeekValue) Set(s string) error {
	w, err := domain.ParseWorkWeek(s)
	if err != nil {
		return err
	}
	if !v.set {
		*v.target = 0
		v.set = true
	}
	*v.target |= w
	return nil
}

func (v *workWeekValue) Type() string { return "weekdays" }
