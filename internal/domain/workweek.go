package domain

import (
	"fmt"
	"strings"
	"time"
)

// WorkWeek is the set of weekdays the user works on, one bit per time.Weekday.
type WorkWeek uint8

// DefaultWorkWeek is Sunday through Thursday.
var DefaultWorkWeek = NewWorkWeek(time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday)

func NewWorkWeek(days ...time.Weekday) WorkWeek {
	var w WorkWeek
	for _, d := range days {
		w |= 1 << uint(d)
	}
	return w
}

func (w WorkWeek) Has(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

// IsWorkDay reports whether the calendar day of t is a work day.
func (w WorkWeek) IsWorkDay(t time.Time) bool {
	return w.Has(t.Weekday())
}

// Days returns the member weekdays in Sunday-first order.
func (w WorkWeek) Days() []time.Weekday {
	var out []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if w.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String renders the set as comma-separated short names, e.g. "sun,mon,tue".
func (w WorkWeek) String() string {
	days := w.Days()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = WeekdayShort(d)
	}
	return strings.Join(names, ",")
}

// WeekdayShort returns the lower-case three letter name of d.
func WeekdayShort(d time.Weekday) string {
	return strings.ToLower(d.String()[:3])
}

// ParseWeekday accepts full or three-letter weekday names in any case.
func ParseWeekday(s string) (time.Weekday, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if v == full || v == full[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// ParseWorkWeek parses a comma-separated list of weekday names.
// An empty string yields an empty set.
func ParseWorkWeek(s string) (WorkWeek, error) {
	var w WorkWeek
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return 0, err
		}
		w |= NewWorkWeek(d)
	}
	return w, nil
}
