// Package calendar enumerates the calendar days that make up a chart
// window and answers "which bucket is this day" lookups.
package calendar

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// Grid is an ordered run of civil dates with O(1) lookup by day.
type Grid struct {
	days  []time.Time
	index map[string]int
}

// NewGrid builds a grid of n consecutive days starting at the civil date of first.
func NewGrid(first time.Time, n int) *Grid {
	start := domain.CivilDate(first)
	g := &Grid{
		days:  make([]time.Time, n),
		index: make(map[string]int, n),
	}
	for i := 0; i < n; i++ {
		d := start.AddDate(0, 0, i)
		g.days[i] = d
		g.index[domain.DayKey(d)] = i
	}
	return g
}

// Days returns the grid's civil dates in chronological order.
func (g *Grid) Days() []time.Time { return g.days }

func (g *Grid) Len() int { return len(g.days) }

// First and Last return the bounds of the grid. Both are zero for an empty grid.
func (g *Grid) First() time.Time {
	if len(g.days) == 0 {
		return time.Time{}
	}
	return g.days[0]
}

func (g *Grid) Last() time.Time {
	if len(g.days) == 0 {
		return time.Time{}
	}
	return g.days[len(g.days)-1]
}

// Index returns the bucket position of t's calendar day.
func (g *Grid) Index(t time.Time) (int, bool) {
	i, ok := g.index[domain.DayKey(domain.CivilDate(t))]
	return i, ok
}

func (g *Grid) Contains(t time.Time) bool {
	_, ok := g.Index(t)
	return ok
}

// WeekGrid returns the 7 days of the week containing ref, starting on weekStart.
func WeekGrid(ref time.Time, weekStart time.Weekday) *Grid {
	return NewGrid(StartOfWeek(ref, weekStart), 7)
}

// MonthGrid returns every day of the month containing ref.
func MonthGrid(ref time.Time) *Grid {
	y, m, _ := ref.Date()
	return NewGrid(time.Date(y, m, 1, 0, 0, 0, 0, time.UTC), DaysInMonth(y, m))
}

// TrailingGrid returns the n days ending on the calendar day of end, inclusive.
func TrailingGrid(end time.Time, n int) *Grid {
	return NewGrid(domain.CivilDate(end).AddDate(0, 0, -(n - 1)), n)
}

// StartOfWeek returns the civil date of the most recent weekStart on or before ref.
func StartOfWeek(ref time.Time, weekStart time.Weekday) time.Time {
	d := domain.CivilDate(ref)
	offset := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -offset)
}

// DaysInMonth returns 28, 29, 30 or 31.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
