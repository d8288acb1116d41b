package testutil

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/scoring"
	"github.com/google/uuid"
)

// Day returns the civil date for y-m-d.
func Day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Record options
type RecordOption func(*domain.DailyRiskRecord)

func WithScore(score float64) RecordOption {
	return func(r *domain.DailyRiskRecord) {
		r.RiskScore = score
		r.IsRiskDay = scoring.IsRiskDay(score)
	}
}

func WithCompletedAt(t time.Time) RecordOption {
	return func(r *domain.DailyRiskRecord) {
		r.CompletedAt = t
	}
}

func WithRotationIndex(i int) RecordOption {
	return func(r *domain.DailyRiskRecord) {
		r.RotationIndex = i
	}
}

// NewTestRecord builds a low-risk record for day, completed at 18:00 UTC.
func NewTestRecord(day time.Time, opts ...RecordOption) *domain.DailyRiskRecord {
	date := domain.CivilDate(day)
	r := &domain.DailyRiskRecord{
		ID:          uuid.New().String(),
		Date:        date,
		RiskScore:   2.0,
		CompletedAt: date.Add(18 * time.Hour),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewTestAnswers builds one answer per dimension, answered at `at` using the
// given rotation slot. Values are in catalog order: exhaustion, boredom, efficiency.
func NewTestAnswers(at time.Time, rotation int, values ...int) []domain.DailyAnswer {
	answers := make([]domain.DailyAnswer, 0, len(values))
	for i, v := range values {
		if i >= len(domain.Dimensions) {
			break
		}
		answers = append(answers, domain.DailyAnswer{
			ID:            uuid.New().String(),
			Dimension:     domain.Dimensions[i],
			QuestionIndex: rotation,
			Value:         v,
			AnsweredAt:    at,
		})
	}
	return answers
}
