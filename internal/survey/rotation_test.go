package survey

import (
	"testing"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectToday_PicksSameIndexForEveryDimension(t *testing.T) {
	c := DefaultCatalog()
	sel := c.SelectToday(4)

	assert.Equal(t, 4, sel.RotationIndex)
	assert.Equal(t, 5, sel.NextRotationIndex)
	require.Len(t, sel.Questions, 3)
	assert.Equal(t, exhaustionQuestions[4], sel.Questions[0].Text)
	assert.Equal(t, boredomQuestions[4], sel.Questions[1].Text)
	assert.Equal(t, efficiencyQuestions[4], sel.Questions[2].Text)
	for i, q := range sel.Questions {
		assert.Equal(t, domain.Dimensions[i], q.Dimension)
		assert.Equal(t, 4, q.Index)
	}
}

func TestSelectToday_WrapsAtEnd(t *testing.T) {
	sel := DefaultCatalog().SelectToday(19)
	assert.Equal(t, 0, sel.NextRotationIndex)
}

func TestSelectToday_Deterministic(t *testing.T) {
	c := DefaultCatalog()
	for i := 0; i < QuestionsPerDimension; i++ {
		assert.Equal(t, c.SelectToday(i), c.SelectToday(i))
	}
}

func TestSelectToday_VisitsEveryIndexOnceBeforeRepeating(t *testing.T) {
	c := DefaultCatalog()
	seen := make(map[int]bool)
	idx := 0
	for i := 0; i < QuestionsPerDimension; i++ {
		sel := c.SelectToday(idx)
		assert.False(t, seen[sel.RotationIndex], "index %d repeated", sel.RotationIndex)
		seen[sel.RotationIndex] = true
		idx = sel.NextRotationIndex
	}
	assert.Len(t, seen, QuestionsPerDimension)
	assert.Equal(t, 0, idx, "rotation should be back at the start")
}

func TestNormalizeRotationIndex(t *testing.T) {
	tests := []struct {
		in      int
		want    int
		inRange bool
	}{
		{0, 0, true},
		{19, 19, true},
		{20, 0, false},
		{47, 7, false},
		{-1, 19, false},
		{-41, 19, false},
	}
	for _, tt := range tests {
		got, ok := NormalizeRotationIndex(tt.in)
		assert.Equal(t, tt.want, got, "input %d", tt.in)
		assert.Equal(t, tt.inRange, ok, "input %d", tt.in)
	}
}

func TestSelectToday_OutOfRangeInputNormalized(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, c.SelectToday(3), c.SelectToday(23))
	assert.Equal(t, c.SelectToday(19), c.SelectToday(-1))
	assert.Equal(t, 1, NextRotationIndex(20))
}
