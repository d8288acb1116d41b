// Package cadence computes when the daily check-in is due from a standard
// five-field cron expression. It never schedules or sends anything.
package cadence

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/alexanderramin/ember/internal/domain"
)

// Cadence is a parsed check-in schedule bound to a location.
type Cadence struct {
	spec     string
	schedule cron.Schedule
	loc      *time.Location
}

// Parse accepts standard cron syntax ("0 18 * * *") and descriptors such as "@daily".
func Parse(spec string, loc *time.Location) (*Cadence, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse check-in cron %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Cadence{spec: spec, schedule: sched, loc: loc}, nil
}

func (c *Cadence) Spec() string { return c.spec }

// Next returns the first prompt time strictly after now.
func (c *Cadence) Next(now time.Time) time.Time {
	return c.schedule.Next(now.In(c.loc))
}

// FirstOn returns the first prompt on the calendar day of t, or false when
// the schedule has none that day.
func (c *Cadence) FirstOn(t time.Time) (time.Time, bool) {
	local := t.In(c.loc)
	y, m, d := local.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	first := c.schedule.Next(startOfDay.Add(-time.Second))
	if !domain.SameDay(first, local) {
		return time.Time{}, false
	}
	return first, true
}

// Status describes the check-in cadence at one instant.
type Status struct {
	Next           time.Time
	CompletedToday bool
	// Overdue is true once today's first prompt has passed without a check-in.
	Overdue bool
}

func (c *Cadence) Status(now time.Time, completedToday bool) Status {
	s := Status{
		Next:           c.Next(now),
		CompletedToday: completedToday,
	}
	if first, ok := c.FirstOn(now); ok && !completedToday && !first.After(now) {
		s.Overdue = true
	}
	return s
}
