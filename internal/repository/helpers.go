package repository

import (
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// timestampLayout keeps sub-second precision so latest-wins ordering
// between records of the same day stays exact.
const timestampLayout = time.RFC3339Nano

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// formatTimestamp normalizes t to UTC for storage.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// dayString formats the calendar day of t as stored in day columns.
func dayString(t time.Time) string {
	return domain.DayKey(domain.CivilDate(t))
}

// nowUTC returns the current UTC time in storage format.
func nowUTC() string {
	return formatTimestamp(time.Now())
}
