package survey

import "github.com/alexanderramin/ember/internal/domain"

// NormalizeRotationIndex maps any integer into [0, QuestionsPerDimension).
// The second result is false when the input was out of range and had to be
// wrapped, which callers log as an invalid persisted index.
func NormalizeRotationIndex(index int) (int, bool) {
	n := index % QuestionsPerDimension
	if n < 0 {
		n += QuestionsPerDimension
	}
	return n, n == index
}

// NextRotationIndex returns the slot that follows index.
func NextRotationIndex(index int) int {
	n, _ := NormalizeRotationIndex(index)
	return (n + 1) % QuestionsPerDimension
}

// Selection is the set of questions asked on one day.
type Selection struct {
	RotationIndex     int
	NextRotationIndex int
	Questions         []Question
}

// Question returns the selected question for d.
func (s Selection) Question(d domain.Dimension) (Question, bool) {
	for _, q := range s.Questions {
		if q.Dimension == d {
			return q, true
		}
	}
	return Question{}, false
}

// SelectToday picks one question per dimension at the normalized rotation
// index and reports the index to persist for the next day. Deterministic.
func (c *Catalog) SelectToday(rotationIndex int) Selection {
	idx, _ := NormalizeRotationIndex(rotationIndex)
	sel := Selection{
		RotationIndex:     idx,
		NextRotationIndex: (idx + 1) % QuestionsPerDimension,
		Questions:         make([]Question, 0, len(c.dimensions)),
	}
	for _, dq := range c.dimensions {
		sel.Questions = append(sel.Questions, Question{
			Dimension: dq.Dimension,
			Index:     idx,
			Text:      dq.Questions[idx],
		})
	}
	return sel
}
