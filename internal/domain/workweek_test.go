package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultWorkWeek_SundayThroughThursday(t *testing.T) {
	assert.Equal(t, []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	}, DefaultWorkWeek.Days())
	assert.False(t, DefaultWorkWeek.Has(time.Friday))
	assert.False(t, DefaultWorkWeek.Has(time.Saturday))
	assert.Equal(t, "sun,mon,tue,wed,thu", DefaultWorkWeek.String())
}

func TestWorkWeek_IsWorkDay(t *testing.T) {
	w := NewWorkWeek(time.Monday)
	monday := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	assert.True(t, w.IsWorkDay(monday))
	assert.False(t, w.IsWorkDay(monday.AddDate(0, 0, 1)))
}

func TestParseWorkWeek(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  WorkWeek
	}{
		{"short names", "mon,tue", NewWorkWeek(time.Monday, time.Tuesday)},
		{"full names mixed case", "Monday, FRIDAY", NewWorkWeek(time.Monday, time.Friday)},
		{"duplicates collapse", "sat,sat", NewWorkWeek(time.Saturday)},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkWeek(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseWorkWeek_UnknownDay(t *testing.T) {
	_, err := ParseWorkWeek("mon,funday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "funday")
}

func TestWorkWeek_StringRoundTrip(t *testing.T) {
	w := NewWorkWeek(time.Saturday, time.Wednesday)
	parsed, err := ParseWorkWeek(w.String())
	require.NoError(t, err)
	assert.Equal(t, w, parsed)
}
