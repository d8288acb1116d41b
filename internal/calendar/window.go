package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// WindowSpec selects a chart window. It is one of Week or Month.
type WindowSpec interface {
	Kind() domain.WindowKind
	Reference() time.Time
	windowSpec()
}

// Week is the calendar week containing Ref, beginning on Start.
type Week struct {
	Ref   time.Time
	Start time.Weekday
}

// Month is the calendar month containing Ref.
type Month struct {
	Ref time.Time
}

func (Week) Kind() domain.WindowKind { return domain.WindowWeek }
func (w Week) Reference() time.Time { return w.Ref }
func (Week) windowSpec() {}

func (Month) Kind() domain.WindowKind { return domain.WindowMonth }
func (m Month) Reference() time.Time { return m.Ref }
func (Month) windowSpec() {}

// NewWindow builds a spec from its kind name.
func NewWindow(kind domain.WindowKind, ref time.Time, weekStart time.Weekday) (WindowSpec, error) {
	switch kind {
	case domain.WindowWeek:
		return Week{Ref: ref, Start: weekStart}, nil
	case domain.WindowMonth:
		return Month{Ref: ref}, nil
	default:
		return nil, fmt.Errorf("unknown window %q (expected week or month)", kind)
	}
}

// GridFor enumerates the buckets of spec.
func GridFor(spec WindowSpec) *Grid {
	switch w := spec.(type) {
	case Week:
		return WeekGrid(w.Ref, w.Start)
	case Month:
		return MonthGrid(w.Ref)
	default:
		return NewGrid(time.Time{}, 0)
	}
}

// Shift moves spec by n whole windows; negative n moves back in time.
func Shift(spec WindowSpec, n int) WindowSpec {
	switch w := spec.(type) {
	case Week:
		return Week{Ref: domain.CivilDate(w.Ref).AddDate(0, 0, 7*n), Start: w.Start}
	case Month:
		y, m, _ := w.Ref.Date()
		return Month{Ref: time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)}
	default:
		return spec
	}
}

// Describe renders a short heading for the window, e.g. "Week of Mar 9, 2025" or "March 2025".
func Describe(spec WindowSpec) string {
	switch w := spec.(type) {
	case Week:
		return "Week of " + StartOfWeek(w.Ref, w.Start).Format("Jan 2, 2006")
	case Month:
		return w.Ref.Format("January 2006")
	default:
		return ""
	}
}
