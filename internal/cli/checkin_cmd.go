package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/scoring"
	"github.com/alexanderramin/ember/internal/survey"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	values := make(map[domain.Dimension]*int, len(domain.Dimensions))
	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Answer today's three questions",
		Long: `Answer today's exhaustion, boredom and efficiency questions on a 1-5 scale.
Without flags an interactive form is shown. Only one check-in is stored per day.`,
		Example: `  ember checkin
  ember checkin --exhaustion 4 --boredom 3 --efficiency 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			given := make(map[domain.Dimension]int, len(values))
			for _, d := range domain.Dimensions {
				if cmd.Flags().Changed(string(d)) {
					given[d] = *values[d]
				}
			}

			if len(given) == 0 && app.IsInteractive {
				return runInteractiveCheckIn(cmd.Context(), cmd.OutOrStdout(), app)
			}

			res, err := app.CheckIn.SubmitValues(cmd.Context(), usecase.SubmitCheckInRequest{
				Now:    app.nowPtr(),
				Values: given,
			})
			if err != nil {
				return checkInError(err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckInResult(res)+"\n")
			return nil
		},
	}

	for _, d := range domain.Dimensions {
		v := new(int)
		values[d] = v
		cmd.Flags().IntVar(v, string(d), 0,
			fmt.Sprintf("%s answer (%d-%d)", d.DisplayName(), domain.MinAnswer, domain.MaxAnswer))
	}
	return cmd
}

// runInteractiveCheckIn shows the huh form for today's selection and
// submits it. Aborting the form stores nothing.
func runInteractiveCheckIn(ctx context.Context, out io.Writer, app *App) error {
	c, err := app.CheckIn.Begin(ctx, usecase.TodayRequest{Now: app.nowPtr()})
	if err != nil {
		return err
	}
	if c.State() == domain.CheckInAlreadyCompletedToday {
		return checkInError(survey.ErrAlreadyCompletedToday)
	}

	sel := c.Selection()
	answers := make([]int, len(sel.Questions))
	if err := checkInForm(sel, answers).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(out, formatter.Dim("Check-in abandoned. Nothing was saved."))
			return nil
		}
		return err
	}

	answeredAt := app.now()
	for i, q := range sel.Questions {
		if err := c.Answer(q.Dimension, answers[i], answeredAt); err != nil {
			return checkInError(err)
		}
	}

	res, err := app.CheckIn.Submit(ctx, c)
	if err != nil {
		return checkInError(err)
	}
	fmt.Fprint(out, formatter.FormatCheckInResult(res)+"\n")
	return nil
}

// checkInError turns domain errors into messages that say what to do next.
func checkInError(err error) error {
	var insufficient *scoring.InsufficientAnswersError
	switch {
	case errors.Is(err, survey.ErrAlreadyCompletedToday):
		return fmt.Errorf("already checked in today; see 'ember today' or come back tomorrow")
	case errors.As(err, &insufficient):
		flags := make([]string, len(insufficient.Missing))
		for i, d := range insufficient.Missing {
			flags[i] = "--" + string(d)
		}
		return fmt.Errorf("missing answers, pass %s with a value from %d to %d",
			strings.Join(flags, ", "), domain.MinAnswer, domain.MaxAnswer)
	default:
		return err
	}
}
