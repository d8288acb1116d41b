package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
	"github.com/alexanderramin/ember/internal/scoring"
)

const chartBarWidth = 20

const chartLegend = "● work day  ○ day off  · no check-in"

// FormatChart renders a week or month of daily scores as a boxed bar chart.
func FormatChart(resp *app.ChartResponse) string {
	var b strings.Builder
	b.WriteString(ChartRows(resp.Points, resp.Today))
	b.WriteString("\n")
	b.WriteString(Dim(chartLegend))
	b.WriteString("\n\n")
	b.WriteString(ChartSummary(resp.Summary))
	return RenderBox(resp.Title, b.String())
}

// ChartRows renders one line per bucket: label, work-day marker, bar and
// score. Buckets without a response show a dotted bar and "--".
func ChartRows(points []domain.ChartPoint, today time.Time) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(chartRow(p, today))
		b.WriteString("\n")
	}
	return b.String()
}

func chartRow(p domain.ChartPoint, today time.Time) string {
	marker := StyleDim.Render("○")
	if p.IsWorkDay {
		marker = StyleBlue.Render("●")
	}

	var bar, value string
	if p.HasResponse {
		band := scoring.Band(p.Value)
		bar = RenderScoreBar(scoring.DisplayPercent(p.Value), chartBarWidth, band)
		value = BandColor(band).Render(fmt.Sprintf("%5s", FormatScore(p.Value)))
	} else {
		bar = RenderMissingBar(chartBarWidth)
		value = Dim(fmt.Sprintf("%5s", "--"))
	}

	line := fmt.Sprintf("%3s %s %s %s", p.Label, marker, bar, value)
	if p.HasResponse && p.IsRiskDay {
		line += "  " + StyleRed.Render("risk")
	}
	if !today.IsZero() && domain.SameDay(p.Date, today) {
		line += "  " + StyleHeader.Render("‹ today")
	}
	return line
}

// ChartSummary renders the footer line under a chart.
func ChartSummary(s insights.Summary) string {
	if s.Responded == 0 {
		return Dim("No check-ins in this window yet.")
	}
	parts := []string{
		fmt.Sprintf("Checked in %d of %d days", s.Responded, s.Buckets),
		plural(s.RiskDays, "risk day", "risk days"),
		"average " + FormatScore(s.Average),
		"peak " + FormatScore(s.Peak),
	}
	return strings.Join(parts, " · ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
