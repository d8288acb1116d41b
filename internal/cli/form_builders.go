package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/survey"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// emberHuhTheme returns a huh theme matching the Gruvbox palette.
func emberHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// answerLabels describes each point of the 1-5 scale.
var answerLabels = map[int]string{
	1: "Not at all",
	2: "A little",
	3: "Somewhat",
	4: "Quite a bit",
	5: "Very much",
}

// answerOptions lists the scale from MinAnswer to MaxAnswer.
func answerOptions() []huh.Option[int] {
	opts := make([]huh.Option[int], 0, domain.MaxAnswer-domain.MinAnswer+1)
	for v := domain.MinAnswer; v <= domain.MaxAnswer; v++ {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%d  %s", v, answerLabels[v]), v))
	}
	return opts
}

// answerSelect returns a single 1-5 question.
func answerSelect(q survey.Question, step, total int, value *int) *huh.Select[int] {
	title := fmt.Sprintf("%d/%d  %s", step, total, strings.ToUpper(q.Dimension.DisplayName()))
	return huh.NewSelect[int]().
		Title(title).
		Description(q.Text).
		Options(answerOptions()...).
		Value(value)
}

// checkInForm asks today's questions one group at a time. values is
// filled in selection order.
func checkInForm(sel survey.Selection, values []int) *huh.Form {
	groups := make([]*huh.Group, 0, len(sel.Questions))
	for i, q := range sel.Questions {
		if values[i] == 0 {
			values[i] = 3
		}
		groups = append(groups, huh.NewGroup(answerSelect(q, i+1, len(sel.Questions), &values[i])))
	}
	return huh.NewForm(groups...).WithTheme(emberHuhTheme()).WithShowHelp(false)
}
