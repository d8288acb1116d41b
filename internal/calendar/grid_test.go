package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekGrid_SundayStart(t *testing.T) {
	// Wednesday 2025-03-12
	g := WeekGrid(time.Date(2025, 3, 12, 17, 45, 0, 0, time.UTC), time.Sunday)
	require.Equal(t, 7, g.Len())
	assert.Equal(t, day(2025, 3, 9), g.First())
	assert.Equal(t, day(2025, 3, 15), g.Last())
	assert.Equal(t, time.Sunday, g.First().Weekday())
}

func TestWeekGrid_MondayStart(t *testing.T) {
	g := WeekGrid(day(2025, 3, 9), time.Monday) // a Sunday
	assert.Equal(t, day(2025, 3, 3), g.First())
	assert.Equal(t, day(2025, 3, 9), g.Last())
}

func TestWeekGrid_SpansMonthBoundary(t *testing.T) {
	g := WeekGrid(day(2025, 3, 1), time.Sunday)
	assert.Equal(t, day(2025, 2, 23), g.First())
	assert.Equal(t, day(2025, 3, 1), g.Last())
}

func TestMonthGrid_DayCounts(t *testing.T) {
	tests := []struct {
		ref  time.Time
		want int
	}{
		{day(2025, 2, 10), 28},
		{day(2024, 2, 29), 29},
		{day(2025, 4, 30), 30},
		{day(2025, 12, 31), 31},
	}
	for _, tt := range tests {
		g := MonthGrid(tt.ref)
		assert.Equal(t, tt.want, g.Len(), "month of %s", tt.ref.Format(domain.DateLayout))
		assert.Equal(t, 1, g.First().Day())
		assert.Equal(t, tt.want, g.Last().Day())
	}
}

func TestGrid_Index(t *testing.T) {
	g := MonthGrid(day(2025, 3, 1))

	i, ok := g.Index(time.Date(2025, 3, 5, 23, 59, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 4, i)

	assert.False(t, g.Contains(day(2025, 4, 1)))
	assert.False(t, g.Contains(day(2025, 2, 28)))
}

func TestTrailingGrid_InclusiveOfEnd(t *testing.T) {
	g := TrailingGrid(time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC), 7)
	assert.Equal(t, 7, g.Len())
	assert.Equal(t, day(2025, 3, 9), g.First())
	assert.Equal(t, day(2025, 3, 15), g.Last())
}

func TestStartOfWeek(t *testing.T) {
	sat := day(2025, 3, 15)
	assert.Equal(t, day(2025, 3, 9), StartOfWeek(sat, time.Sunday))
	assert.Equal(t, day(2025, 3, 10), StartOfWeek(sat, time.Monday))
	assert.Equal(t, sat, StartOfWeek(sat, time.Saturday))
}
