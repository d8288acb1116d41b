package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrAnswerOutOfRange is returned when a slider value falls outside [MinAnswer, MaxAnswer].
var ErrAnswerOutOfRange = errors.New("answer out of range")

// DailyAnswer is one submitted slider response. It is immutable once created.
type DailyAnswer struct {
	ID            string
	Dimension     Dimension
	QuestionIndex int
	Value         int
	AnsweredAt    time.Time
}

// NewDailyAnswer validates and builds an answer.
func NewDailyAnswer(d Dimension, questionIndex, value int, at time.Time) (DailyAnswer, error) {
	a := DailyAnswer{
		Dimension:     d,
		QuestionIndex: questionIndex,
		Value:         value,
		AnsweredAt:    at,
	}
	if err := a.Validate(); err != nil {
		return DailyAnswer{}, err
	}
	return a, nil
}

func (a DailyAnswer) Validate() error {
	if !a.Dimension.Valid() {
		return fmt.Errorf("invalid dimension %q", a.Dimension)
	}
	if a.Value < MinAnswer || a.Value > MaxAnswer {
		return fmt.Errorf("%s answer %d not in [%d, %d]: %w",
			a.Dimension, a.Value, MinAnswer, MaxAnswer, ErrAnswerOutOfRange)
	}
	return nil
}
