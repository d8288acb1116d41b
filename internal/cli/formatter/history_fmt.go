package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/scoring"
)

var historyColumns = []Column{
	{Title: "DATE"},
	{Title: "SCORE", Right: true},
	{Title: "LEVEL"},
	{Title: "RISK"},
	{Title: "AT", Right: true},
}

// FormatHistory renders one row per answered day, newest first.
// Completion times are shown in loc.
func FormatHistory(resp *app.HistoryResponse, loc *time.Location) string {
	title := fmt.Sprintf("History %s to %s", resp.From.Format("Jan 2"), resp.To.Format("Jan 2"))
	if len(resp.Records) == 0 {
		return RenderBox(title, Dim("No check-ins recorded in this period."))
	}

	var b strings.Builder
	b.WriteString(HistoryTable(resp.Records, loc))
	b.WriteString("\n")
	b.WriteString(Dim(plural(len(resp.Records), "day answered", "days answered")))
	return RenderBox(title, b.String())
}

// HistoryTable renders the record rows without the surrounding box.
func HistoryTable(records []domain.DailyRiskRecord, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		band := scoring.Band(r.RiskScore)
		risk := ""
		if r.IsRiskDay {
			risk = StyleRed.Render("yes")
		}
		rows = append(rows, []string{
			ShortDate(r.Date),
			ScoreStyled(r.RiskScore, band),
			BandColor(band).Render(capitalize(string(band))),
			risk,
			Dim(r.CompletedAt.In(loc).Format("15:04")),
		})
	}
	return RenderTable(historyColumns, rows)
}
