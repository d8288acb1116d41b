package scoring

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// RiskDayThreshold is the score at or above which a day counts as a risk day.
const RiskDayThreshold = 3.5

// ErrInsufficientAnswers matches any *InsufficientAnswersError via errors.Is.
var ErrInsufficientAnswers = errors.New("insufficient answers")

// InsufficientAnswersError reports which dimensions are still unanswered.
type InsufficientAnswersError struct {
	Missing []domain.Dimension
}

func (e *InsufficientAnswersError) Error() string {
	names := make([]string, len(e.Missing))
	for i, d := range e.Missing {
		names[i] = string(d)
	}
	return fmt.Sprintf("%s: missing %s", ErrInsufficientAnswers, strings.Join(names, ", "))
}

func (e *InsufficientAnswersError) Is(target error) bool {
	return target == ErrInsufficientAnswers
}

// Contribution is the value one answer adds to the daily sum. Inverted
// dimensions contribute 6 - raw so that higher always means more risk.
func Contribution(d domain.Dimension, raw int) int {
	if d.Inverted() {
		return domain.MaxAnswer + domain.MinAnswer - raw
	}
	return raw
}

// ComputeDailyScore reduces one day's answers into a risk record. Exactly one
// answer per dimension is required; when a dimension appears more than once
// the latest AnsweredAt wins. The record is dated on the calendar day of the
// latest answer. ID is left for the caller to assign.
func ComputeDailyScore(answers []domain.DailyAnswer) (domain.DailyRiskRecord, error) {
	latest := make(map[domain.Dimension]domain.DailyAnswer, len(domain.Dimensions))
	for _, a := range answers {
		if err := a.Validate(); err != nil {
			return domain.DailyRiskRecord{}, err
		}
		if prev, ok := latest[a.Dimension]; !ok || a.AnsweredAt.After(prev.AnsweredAt) {
			latest[a.Dimension] = a
		}
	}

	var missing []domain.Dimension
	for _, d := range domain.Dimensions {
		if _, ok := latest[d]; !ok {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return domain.DailyRiskRecord{}, &InsufficientAnswersError{Missing: missing}
	}

	var sum int
	var completedAt time.Time
	for _, d := range domain.Dimensions {
		a := latest[d]
		sum += Contribution(d, a.Value)
		if a.AnsweredAt.After(completedAt) {
			completedAt = a.AnsweredAt
		}
	}

	score := float64(sum) / float64(len(domain.Dimensions))
	return domain.DailyRiskRecord{
		Date:          domain.CivilDate(completedAt),
		RiskScore:     score,
		IsRiskDay:     IsRiskDay(score),
		RotationIndex: latest[domain.Dimensions[0]].QuestionIndex,
		CompletedAt:   completedAt,
	}, nil
}

// IsRiskDay applies the fixed threshold.
func IsRiskDay(score float64) bool {
	return score >= RiskDayThreshold
}
