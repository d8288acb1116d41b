// Package insights turns stored daily records into chart buckets and a
// trailing-week risk trend. Everything here is a pure transform over
// already-loaded records.
package insights

import (
	"sort"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// LatestPerDay keeps one record per calendar day, the one with the latest
// CompletedAt, and returns them in chronological order. Ties keep the
// record seen last.
func LatestPerDay(records []domain.DailyRiskRecord) []domain.DailyRiskRecord {
	byDay := make(map[string]domain.DailyRiskRecord, len(records))
	for _, r := range records {
		key := domain.DayKey(domain.CivilDate(r.Date))
		if prev, ok := byDay[key]; ok && prev.CompletedAt.After(r.CompletedAt) {
			continue
		}
		byDay[key] = r
	}

	out := make([]domain.DailyRiskRecord, 0, len(byDay))
	for _, r := range byDay {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// indexByDay maps day keys to the deduplicated record for that day.
func indexByDay(records []domain.DailyRiskRecord) map[string]domain.DailyRiskRecord {
	latest := LatestPerDay(records)
	m := make(map[string]domain.DailyRiskRecord, len(latest))
	for _, r := range latest {
		m[domain.DayKey(domain.CivilDate(r.Date))] = r
	}
	return m
}

// inRange filters deduplicated records to [from, to] by calendar day.
func inRange(records []domain.DailyRiskRecord, from, to time.Time) []domain.DailyRiskRecord {
	lo, hi := domain.CivilDate(from), domain.CivilDate(to)
	var out []domain.DailyRiskRecord
	for _, r := range LatestPerDay(records) {
		d := domain.CivilDate(r.Date)
		if d.Before(lo) || d.After(hi) {
			continue
		}
		out = append(out, r)
	}
	return out
}
