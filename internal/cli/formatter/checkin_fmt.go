package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/cadence"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/scoring"
	"github.com/alexanderramin/ember/internal/survey"
)

const scoreGaugeWidth = 20

// QuestionSet renders a rotation index as a 1-based position, e.g. "question set 4 of 20".
func QuestionSet(index int) string {
	return fmt.Sprintf("question set %d of %d", index+1, survey.QuestionsPerDimension)
}

// FormatToday renders today's questions, or today's result once answered.
func FormatToday(v *app.TodayView) string {
	var b strings.Builder
	b.WriteString(Bold(ShortDate(v.Date)) + Dim(" · "+QuestionSet(v.RotationIndex)) + "\n\n")

	if v.CompletedToday && v.Record != nil {
		band := scoring.Band(v.Record.RiskScore)
		b.WriteString(StyleGreen.Render("✔ Checked in today") + "\n")
		b.WriteString(fmt.Sprintf("Score  %s  %s\n", ScoreStyled(v.Record.RiskScore, band), BandIndicator(band)))
		return RenderBox("Today", b.String())
	}

	for i, q := range v.Questions {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, StyleHeader.Render(q.Dimension.DisplayName())))
		b.WriteString("   " + q.Text + "\n")
	}
	b.WriteString("\n" + Dim("Answer with: ember checkin"))
	return RenderBox("Today", b.String())
}

// FormatCheckInResult renders the outcome of a stored check-in.
func FormatCheckInResult(res *app.CheckInResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ Check-in saved for "+ShortDate(res.Record.Date)) + "\n\n")

	for _, a := range res.Answers {
		note := ""
		if a.Dimension.Inverted() {
			note = Dim(fmt.Sprintf("  (counts as %d)", domain.MaxAnswer+domain.MinAnswer-a.Value))
		}
		b.WriteString(fmt.Sprintf("%-11s %d%s\n", a.Dimension.DisplayName(), a.Value, note))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-11s %s  %s\n", "Score", ScoreStyled(res.Record.RiskScore, res.Band),
		RenderGauge(res.DisplayPct, scoreGaugeWidth)))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Level", BandIndicator(res.Band)))
	if res.Record.IsRiskDay {
		b.WriteString("\n" + StyleRed.Render(fmt.Sprintf("Risk day: score at or above %.1f.", scoring.RiskDayThreshold)) + "\n")
	}
	b.WriteString("\n" + Dim("Next time: "+QuestionSet(res.NextRotationIndex)))
	return RenderBox("Check-in", b.String())
}

// FormatSettings renders the stored preferences.
func FormatSettings(v *app.SettingsView) string {
	work := WorkDaysLabel(v.WorkDays)
	if !v.CustomWorkDays {
		work += Dim(" (default)")
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Work days", work))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Week start", v.WeekStart.String()))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Time zone", v.Location))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Rotation", QuestionSet(v.RotationIndex)))
	return RenderBox("Settings", b.String())
}

// FormatNext renders the cadence status relative to now.
func FormatNext(st cadence.Status, spec string, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-11s %s %s\n", "Next",
		Bold(st.Next.Format("Mon Jan 2 15:04")), Dim("("+RelativeDayFrom(st.Next, now)+")")))
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Schedule", Dim(spec)))

	var state string
	switch {
	case st.CompletedToday:
		state = StyleGreen.Render("✔ done for today")
	case st.Overdue:
		state = StyleYellow.Render("● due now")
	default:
		state = StyleBlue.Render("○ not yet due")
	}
	b.WriteString(fmt.Sprintf("%-11s %s\n", "Today", state))
	return RenderBox("Check-in cadence", b.String())
}
