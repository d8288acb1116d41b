package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// RelativeDayFrom names a calendar day relative to today. Both values are
// compared as civil dates.
func RelativeDayFrom(day, today time.Time) string {
	days := int(math.Round(domain.CivilDate(day).Sub(domain.CivilDate(today)).Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 7:
		return day.Format("Monday")
	case days < 0 && days > -7:
		return fmt.Sprintf("%dd ago", -days)
	default:
		return day.Format("Jan 2, 2006")
	}
}

// ShortDate renders a civil date as "Wed Mar 12".
func ShortDate(day time.Time) string {
	return day.Format("Mon Jan 2")
}

// FormatScore renders a score with two decimals, e.g. "3.67".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f", score)
}

// ScoreStyled renders a score in its band color.
func ScoreStyled(score float64, band domain.RiskBand) string {
	return BandColor(band).Render(FormatScore(score))
}

// WorkDaysLabel renders a work week as capitalized day names, e.g. "Sun Mon Tue".
func WorkDaysLabel(w domain.WorkWeek) string {
	days := w.Days()
	if len(days) == 0 {
		return Dim("none")
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()[:3]
	}
	return strings.Join(names, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
