package app

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/survey"
)

type TodayRequest struct {
	Now *time.Time
}

// TodayView is the rotation preview for the current day.
type TodayView struct {
	Date           time.Time
	RotationIndex  int
	Questions      []survey.Question
	CompletedToday bool
	// Record is today's authoritative record when CompletedToday.
	Record *domain.DailyRiskRecord
}

type SubmitCheckInRequest struct {
	Now *time.Time
	// Values holds one slider value per dimension. It is a convenience for
	// non-interactive callers; interactive callers drive a survey.Collector.
	Values map[domain.Dimension]int
}

type CheckInResult struct {
	Record            domain.DailyRiskRecord
	Answers           []domain.DailyAnswer
	NextRotationIndex int
	Band              domain.RiskBand
	DisplayPct        float64
}
