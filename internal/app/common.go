package app

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// Preferences are the resolved user settings every use case works with.
// They are passed explicitly; nothing below the CLI reads config or env.
type Preferences struct {
	Location        *time.Location
	WeekStart       time.Weekday
	DefaultWorkDays domain.WorkWeek
}

// DefaultPreferences is local time, Sunday-start weeks and a Sun–Thu work week.
func DefaultPreferences() Preferences {
	return Preferences{
		Location:        time.Local,
		WeekStart:       time.Sunday,
		DefaultWorkDays: domain.DefaultWorkWeek,
	}
}

// ResolveNow returns *now (or the wall clock) in the preferred location.
func (p Preferences) ResolveNow(now *time.Time) time.Time {
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}
	if now != nil {
		return now.In(loc)
	}
	return time.Now().In(loc)
}
