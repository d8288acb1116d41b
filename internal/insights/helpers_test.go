package insights

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/scoring"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// rec builds a record completed at 18:00 on the given day.
func rec(date time.Time, score float64) domain.DailyRiskRecord {
	return domain.DailyRiskRecord{
		Date:        date,
		RiskScore:   score,
		IsRiskDay:   scoring.IsRiskDay(score),
		CompletedAt: date.Add(18 * time.Hour),
	}
}
