package service

import (
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
)

// latestRecord returns the authoritative record among records of one day.
func latestRecord(records []domain.DailyRiskRecord) domain.DailyRiskRecord {
	latest := insights.LatestPerDay(records)
	return latest[len(latest)-1]
}
