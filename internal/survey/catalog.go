// Package survey holds the fixed question catalog, the daily rotation
// selector and the in-memory response collector for one check-in.
package survey

import (
	"fmt"

	"github.com/alexanderramin/ember/internal/domain"
)

// QuestionsPerDimension is the rotation length of every dimension.
const QuestionsPerDimension = 20

// Question is one catalog entry selected for a day.
type Question struct {
	Dimension domain.Dimension
	Index     int
	Text      string
}

// DimensionQuestions is the ordered question list of one dimension.
type DimensionQuestions struct {
	Dimension domain.Dimension
	Questions []string
}

// Catalog is the immutable set of questions, one list per dimension in
// domain.Dimensions order.
type Catalog struct {
	dimensions []DimensionQuestions
}

// DefaultCatalog returns the built-in English catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{dimensions: []DimensionQuestions{
		{Dimension: domain.DimensionExhaustion, Questions: exhaustionQuestions},
		{Dimension: domain.DimensionBoredom, Questions: boredomQuestions},
		{Dimension: domain.DimensionEfficiency, Questions: efficiencyQuestions},
	}}
}

// Dimensions returns the catalog's dimension lists in order.
func (c *Catalog) Dimensions() []DimensionQuestions {
	return c.dimensions
}

// Question returns the question at index for d. The index must already be normalized.
func (c *Catalog) Question(d domain.Dimension, index int) (Question, error) {
	for _, dq := range c.dimensions {
		if dq.Dimension != d {
			continue
		}
		if index < 0 || index >= len(dq.Questions) {
			return Question{}, fmt.Errorf("question index %d out of range for %s", index, d)
		}
		return Question{Dimension: d, Index: index, Text: dq.Questions[index]}, nil
	}
	return Question{}, fmt.Errorf("dimension %s not in catalog", d)
}

// Validate checks the catalog invariants: every dimension appears once, in
// domain order, with exactly QuestionsPerDimension non-empty entries.
func (c *Catalog) Validate() error {
	if len(c.dimensions) != len(domain.Dimensions) {
		return fmt.Errorf("catalog has %d dimensions, want %d", len(c.dimensions), len(domain.Dimensions))
	}
	for i, dq := range c.dimensions {
		if dq.Dimension != domain.Dimensions[i] {
			return fmt.Errorf("catalog dimension %d is %s, want %s", i, dq.Dimension, domain.Dimensions[i])
		}
		if len(dq.Questions) != QuestionsPerDimension {
			return fmt.Errorf("%s has %d questions, want %d", dq.Dimension, len(dq.Questions), QuestionsPerDimension)
		}
		for j, q := range dq.Questions {
			if q == "" {
				return fmt.Errorf("%s question %d is empty", dq.Dimension, j)
			}
		}
	}
	return nil
}

var exhaustionQuestions = []string{
	"How drained did you feel at the end of today?",
	"How hard was it to get out of bed this morning?",
	"How tired were you during your working hours?",
	"How much did today feel like a struggle to get through?",
	"How emotionally worn out do you feel right now?",
	"How little energy did you have left for things outside work?",
	"How often did you need a break you could not take?",
	"How heavy did your workload feel today?",
	"How much did work leave you feeling used up?",
	"How difficult was it to concentrate for long stretches?",
	"How strongly did you want the day to be over?",
	"How physically exhausted did you feel after work?",
	"How much did small tasks feel like big efforts today?",
	"How poorly did you recover during your breaks?",
	"How much did you dread the next working day?",
	"How overwhelmed did you feel by what was asked of you?",
	"How much did fatigue affect your mood today?",
	"How hard was it to switch off from work this evening?",
	"How often did you feel close to your limit today?",
	"How worn down do you feel compared with a good week?",
}

var boredomQuestions = []string{
	"How little did your work interest you today?",
	"How much did today's tasks feel pointless?",
	"How detached did you feel from what you were doing?",
	"How often did you catch yourself just going through the motions?",
	"How much did you doubt that your work matters?",
	"How indifferent did you feel about the results of your work?",
	"How slowly did the hours seem to pass?",
	"How little did you care about today's meetings or conversations?",
	"How cynical did you feel about your workplace today?",
	"How much did your work feel repetitive?",
	"How hard was it to find anything engaging in your tasks?",
	"How distant did you feel from your colleagues?",
	"How much did you lose enthusiasm for your job today?",
	"How often did you think about doing something else entirely?",
	"How little did today's work connect to what you value?",
	"How much did you avoid tasks you used to enjoy?",
	"How flat did you feel about finishing your work?",
	"How much did you just want to be left alone at work?",
	"How much did work feel like a routine without meaning?",
	"How uninspired did you feel by your goals today?",
}

var efficiencyQuestions = []string{
	"How effectively did you solve the problems that came up today?",
	"How much did you accomplish that you are proud of?",
	"How confident were you in handling your tasks?",
	"How well did you make a positive difference through your work?",
	"How clearly could you focus on what mattered most?",
	"How capable did you feel at work today?",
	"How well did you manage your time today?",
	"How satisfied are you with the quality of today's work?",
	"How easily did you make decisions when they were needed?",
	"How much did you learn something useful today?",
	"How well did you keep up with your responsibilities?",
	"How productive did today feel overall?",
	"How well did you handle unexpected demands?",
	"How valued did you feel for your contributions?",
	"How much progress did you make on important goals?",
	"How well did you collaborate with others today?",
	"How much control did you feel over your work?",
	"How competent did you feel compared with a good week?",
	"How well did your skills match today's challenges?",
	"How effectively did you finish what you started?",
}
