package cadence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("not a cron", time.UTC)
	assert.Error(t, err)

	_, err = Parse("0 0 18 * * *", time.UTC) // seconds field not accepted
	assert.Error(t, err)
}

func TestNext(t *testing.T) {
	c, err := Parse("0 18 * * *", time.UTC)
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"morning", time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC), time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)},
		{"exactly at prompt", time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC), time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC)},
		{"evening", time.Date(2025, 3, 12, 21, 0, 0, 0, time.UTC), time.Date(2025, 3, 13, 18, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(c.Next(tt.now)), "got %s", c.Next(tt.now))
		})
	}
}

func TestNext_RespectsLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	c, err := Parse("0 18 * * *", tokyo)
	require.NoError(t, err)

	next := c.Next(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)) // 09:00 JST
	assert.True(t, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC).Equal(next))
}

func TestFirstOn_WeekdaysOnly(t *testing.T) {
	c, err := Parse("30 17 * * 1-5", time.UTC)
	require.NoError(t, err)

	first, ok := c.FirstOn(time.Date(2025, 3, 12, 23, 0, 0, 0, time.UTC)) // Wednesday
	require.True(t, ok)
	assert.Equal(t, 17, first.Hour())
	assert.Equal(t, 30, first.Minute())

	_, ok = c.FirstOn(time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)) // Saturday
	assert.False(t, ok)
}

func TestStatus(t *testing.T) {
	c, err := Parse("@daily", time.UTC)
	require.NoError(t, err)
	noon := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

	s := c.Status(noon, false)
	assert.True(t, s.Overdue, "midnight prompt already passed")
	assert.True(t, time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC).Equal(s.Next))

	s = c.Status(noon, true)
	assert.False(t, s.Overdue)
	assert.True(t, s.CompletedToday)

	evening, err := Parse("0 18 * * *", time.UTC)
	require.NoError(t, err)
	assert.False(t, evening.Status(noon, false).Overdue)
}
