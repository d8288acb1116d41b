package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
	"github.com/stretchr/testify/assert"
)

func TestFormatTrend_High(t *testing.T) {
	resp := &app.TrendResponse{
		Trend: insights.Trend{
			Label:           domain.TrendHigh,
			RiskDayCount:    3,
			AverageScore:    3.8,
			SampleSize:      5,
			Sufficient:      true,
			Direction:       domain.DirectionWorsening,
			PreviousAverage: 2.9,
			WindowStart:     day(2025, time.March, 6),
			WindowEnd:       day(2025, time.March, 12),
		},
		Band:       domain.BandHigh,
		DisplayPct: 70,
	}

	out := stripANSI(FormatTrend(resp))
	assert.Contains(t, out, "BURNOUT TREND")
	assert.Contains(t, out, "▲ HIGH")
	assert.Contains(t, out, "Mar 6 to Mar 12")
	assert.Contains(t, out, "3 of 5 answered (3 or more is high)")
	assert.Contains(t, out, "3.80")
	assert.Contains(t, out, " 70%")
	assert.Contains(t, out, "↑ worsening (previous week 2.90)")
}

func TestFormatTrend_NotEnoughData(t *testing.T) {
	resp := &app.TrendResponse{
		Trend: insights.Trend{
			Label:        domain.TrendLow,
			AverageScore: 2.0,
			SampleSize:   1,
			Direction:    domain.DirectionStable,
			WindowStart:  day(2025, time.March, 6),
			WindowEnd:    day(2025, time.March, 12),
		},
		Band: domain.BandLow,
	}

	out := stripANSI(FormatTrend(resp))
	assert.Contains(t, out, "NOT ENOUGH DATA")
	assert.Contains(t, out, "1 check-in in the last 7 days, 3 needed")
	assert.NotContains(t, out, "Direction")
	assert.NotContains(t, out, "● LOW")
}

func TestFormatTrend_NoPreviousWeek(t *testing.T) {
	resp := &app.TrendResponse{
		Trend: insights.Trend{
			Label:        domain.TrendLow,
			AverageScore: 2.2,
			SampleSize:   4,
			Sufficient:   true,
			Direction:    domain.DirectionStable,
		},
		Band:       domain.BandLow,
		DisplayPct: 30,
	}

	out := stripANSI(FormatTrend(resp))
	assert.Contains(t, out, "→ stable")
	assert.NotContains(t, out, "previous week")
}
