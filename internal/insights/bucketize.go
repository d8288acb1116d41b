package insights

import (
	"strconv"
	"time"

	"github.com/alexanderramin/ember/internal/calendar"
	"github.com/alexanderramin/ember/internal/domain"
)

// Bucketize produces one chart point per calendar day of the window.
// Records are deduplicated latest-per-day first. Days without a record get
// Value 0 and HasResponse false; an empty record set is not an error.
func Bucketize(records []domain.DailyRiskRecord, spec calendar.WindowSpec, work domain.WorkWeek) []domain.ChartPoint {
	switch w := spec.(type) {
	case calendar.Week:
		return bucketizeWeek(records, w, work)
	case calendar.Month:
		return bucketizeMonth(records, w, work)
	default:
		return nil
	}
}

func bucketizeWeek(records []domain.DailyRiskRecord, w calendar.Week, work domain.WorkWeek) []domain.ChartPoint {
	return fill(records, calendar.WeekGrid(w.Ref, w.Start), work, weekdayLabel)
}

func bucketizeMonth(records []domain.DailyRiskRecord, m calendar.Month, work domain.WorkWeek) []domain.ChartPoint {
	return fill(records, calendar.MonthGrid(m.Ref), work, dayOfMonthLabel)
}

func weekdayLabel(d time.Time) string {
	return d.Weekday().String()[:3]
}

func dayOfMonthLabel(d time.Time) string {
	return strconv.Itoa(d.Day())
}

func fill(records []domain.DailyRiskRecord, g *calendar.Grid, work domain.WorkWeek, label func(time.Time) string) []domain.ChartPoint {
	byDay := indexByDay(records)
	points := make([]domain.ChartPoint, 0, g.Len())
	for _, d := range g.Days() {
		p := domain.ChartPoint{
			Label:     label(d),
			Date:      d,
			IsWorkDay: work.IsWorkDay(d),
		}
		if r, ok := byDay[domain.DayKey(d)]; ok {
			p.Value = r.RiskScore
			p.HasResponse = true
			p.IsRiskDay = r.IsRiskDay
		}
		points = append(points, p)
	}
	return points
}

// Summary describes a bucket series for chart footers.
type Summary struct {
	Buckets   int
	Responded int
	RiskDays  int
	Average   float64
	Peak      float64
}

// Summarize aggregates responded buckets only; missing buckets never count as zero scores.
func Summarize(points []domain.ChartPoint) Summary {
	s := Summary{Buckets: len(points)}
	var sum float64
	for _, p := range points {
		if !p.HasResponse {
			continue
		}
		s.Responded++
		sum += p.Value
		if p.IsRiskDay {
			s.RiskDays++
		}
		if p.Value > s.Peak {
			s.Peak = p.Value
		}
	}
	if s.Responded > 0 {
		s.Average = sum / float64(s.Responded)
	}
	return s
}
