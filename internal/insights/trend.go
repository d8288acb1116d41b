package insights

import (
	"time"

	"github.com/alexanderramin/ember/internal/calendar"
	"github.com/alexanderramin/ember/internal/domain"
)

const (
	// TrendWindowDays is the length of the trailing window ending today.
	TrendWindowDays = 7
	// HighRiskDayCount risk days inside the window make the trend High.
	HighRiskDayCount = 3
	// MinTrendSamples is the number of answered days needed before a trend is shown.
	MinTrendSamples = 3

	directionDeadband = 0.25
)

// Trend summarizes the trailing week.
type Trend struct {
	Label           domain.TrendLabel
	RiskDayCount    int
	AverageScore    float64
	SampleSize      int
	Sufficient      bool
	Direction       domain.TrendDirection
	PreviousAverage float64
	WindowStart     time.Time
	WindowEnd       time.Time
}

// ClassifyTrend filters records to the TrendWindowDays calendar days ending
// on now (inclusive), counts risk days and averages the scores. An empty
// window averages to 0. Direction compares against the preceding window.
func ClassifyTrend(records []domain.DailyRiskRecord, now time.Time) Trend {
	g := calendar.TrailingGrid(now, TrendWindowDays)
	current := inRange(records, g.First(), g.Last())
	prevEnd := g.First().AddDate(0, 0, -1)
	previous := inRange(records, prevEnd.AddDate(0, 0, -(TrendWindowDays-1)), prevEnd)

	t := Trend{
		Label:       domain.TrendLow,
		SampleSize:  len(current),
		WindowStart: g.First(),
		WindowEnd:   g.Last(),
	}
	for _, r := range current {
		if r.IsRiskDay {
			t.RiskDayCount++
		}
	}
	if t.RiskDayCount >= HighRiskDayCount {
		t.Label = domain.TrendHigh
	}
	t.AverageScore = mean(current)
	t.PreviousAverage = mean(previous)
	t.Sufficient = t.SampleSize >= MinTrendSamples
	t.Direction = direction(current, previous, t.AverageScore, t.PreviousAverage)
	return t
}

func mean(records []domain.DailyRiskRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, r := range records {
		sum += r.RiskScore
	}
	return sum / float64(len(records))
}

// direction treats a rising score as worsening.
func direction(current, previous []domain.DailyRiskRecord, cur, prev float64) domain.TrendDirection {
	if len(current) == 0 || len(previous) == 0 {
		return domain.DirectionStable
	}
	switch delta := cur - prev; {
	case delta > directionDeadband:
		return domain.DirectionWorsening
	case delta < -directionDeadband:
		return domain.DirectionImproving
	default:
		return domain.DirectionStable
	}
}
