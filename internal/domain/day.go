package domain

import "time"

// DateLayout is the storage and display layout for calendar days.
const DateLayout = "2006-01-02"

// CivilDate strips the clock from t, keeping the calendar day as seen in
// t's own location, and returns it as midnight UTC. Civil dates compare
// with == and step with AddDate without DST surprises.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day in their own locations.
func SameDay(a, b time.Time) bool {
	return CivilDate(a).Equal(CivilDate(b))
}

// DayKey formats the calendar day of t for map lookups and storage.
func DayKey(t time.Time) string {
	return t.Format(DateLayout)
}
