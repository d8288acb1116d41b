package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/insights"
)

const trendGaugeWidth = 20

// FormatTrend renders the trailing-week banner: label, risk-day count,
// average with gauge and the week-over-week direction.
func FormatTrend(resp *app.TrendResponse) string {
	t := resp.Trend
	var b strings.Builder

	b.WriteString(trendLine("Risk level", TrendIndicator(t.Label, t.Sufficient)))
	b.WriteString(trendLine("Window", fmt.Sprintf("%s to %s",
		t.WindowStart.Format("Jan 2"), t.WindowEnd.Format("Jan 2"))))

	if !t.Sufficient {
		b.WriteString("\n")
		b.WriteString(Dim(fmt.Sprintf("Not enough data yet: %s in the last %d days, %d needed.",
			plural(t.SampleSize, "check-in", "check-ins"), insights.TrendWindowDays, insights.MinTrendSamples)))
		b.WriteString("\n")
		return RenderBox("Burnout trend", b.String())
	}

	b.WriteString(trendLine("Risk days", fmt.Sprintf("%d of %d answered (%d or more is high)",
		t.RiskDayCount, t.SampleSize, insights.HighRiskDayCount)))
	b.WriteString(trendLine("Average", ScoreStyled(t.AverageScore, resp.Band)+"  "+
		RenderGauge(resp.DisplayPct, trendGaugeWidth)))
	b.WriteString(trendLine("Level", BandIndicator(resp.Band)))

	direction := DirectionIndicator(t.Direction)
	if t.PreviousAverage > 0 {
		direction += Dim(" (previous week " + FormatScore(t.PreviousAverage) + ")")
	}
	b.WriteString(trendLine("Direction", direction))

	return RenderBox("Burnout trend", b.String())
}

func trendLine(label, value string) string {
	return fmt.Sprintf("%-11s %s\n", label, value)
}
