package survey

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// ErrAlreadyCompletedToday is returned when answers are offered for a day
// that already has a stored record.
var ErrAlreadyCompletedToday = errors.New("check-in already completed today")

// Collector accumulates one answer per dimension for a single day and
// tracks the check-in state. It holds no durable state: dropping a
// Collector abandons the session.
type Collector struct {
	selection Selection
	answers   map[domain.Dimension]domain.DailyAnswer
	state     domain.CheckInState
	lastErr   error
}

// NewCollector starts a session for the given selection. When
// completedToday is true the session is terminal from the start.
func NewCollector(sel Selection, completedToday bool) *Collector {
	c := &Collector{
		selection: sel,
		answers:   make(map[domain.Dimension]domain.DailyAnswer, len(domain.Dimensions)),
		state:     domain.CheckInIdle,
	}
	if completedToday {
		c.state = domain.CheckInAlreadyCompletedToday
	}
	return c
}

func (c *Collector) State() domain.CheckInState { return c.state }

func (c *Collector) Selection() Selection { return c.selection }

// Err returns the error that moved the session into CheckInError, if any.
func (c *Collector) Err() error { return c.lastErr }

// Answer records value for dimension d. Answering the same dimension again
// replaces the earlier value.
func (c *Collector) Answer(d domain.Dimension, value int, at time.Time) error {
	switch c.state {
	case domain.CheckInAlreadyCompletedToday:
		return ErrAlreadyCompletedToday
	case domain.CheckInSubmitted:
		return fmt.Errorf("check-in already submitted")
	}

	q, ok := c.selection.Question(d)
	if !ok {
		return fmt.Errorf("dimension %s not part of today's selection", d)
	}
	a, err := domain.NewDailyAnswer(d, q.Index, value, at)
	if err != nil {
		return err
	}
	c.answers[d] = a
	c.state = domain.CheckInAnswering
	c.lastErr = nil
	return nil
}

// Step is the 1-based number of the next unanswered dimension, or
// len(domain.Dimensions)+1 when all are answered.
func (c *Collector) Step() int {
	for i, d := range domain.Dimensions {
		if _, ok := c.answers[d]; !ok {
			return i + 1
		}
	}
	return len(domain.Dimensions) + 1
}

// Pending returns the dimensions still waiting for an answer, in catalog order.
func (c *Collector) Pending() []domain.Dimension {
	var out []domain.Dimension
	for _, d := range domain.Dimensions {
		if _, ok := c.answers[d]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// Complete reports whether every dimension has an answer.
func (c *Collector) Complete() bool {
	return len(c.Pending()) == 0
}

// Answers returns the collected answers in catalog order.
func (c *Collector) Answers() []domain.DailyAnswer {
	out := make([]domain.DailyAnswer, 0, len(c.answers))
	for _, d := range domain.Dimensions {
		if a, ok := c.answers[d]; ok {
			out = append(out, a)
		}
	}
	return out
}

// MarkSubmitted moves the session to its terminal submitted state.
func (c *Collector) MarkSubmitted() {
	c.state = domain.CheckInSubmitted
}

// MarkFailed records a recoverable submission error. Partial answers are
// kept so the session can continue once the missing input arrives.
func (c *Collector) MarkFailed(err error) {
	c.state = domain.CheckInError
	c.lastErr = err
}
