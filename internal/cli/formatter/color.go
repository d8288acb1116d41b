package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BandColor returns the style for a score band.
func BandColor(band domain.RiskBand) lipgloss.Style {
	switch band {
	case domain.BandHigh:
		return StyleRed
	case domain.BandModerate:
		return StyleYellow
	case domain.BandLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// BandIndicator returns a colored band label such as "● HIGH".
func BandIndicator(band domain.RiskBand) string {
	if band == "" {
		return StyleDim.Render("● UNKNOWN")
	}
	return BandColor(band).Render("● " + strings.ToUpper(string(band)))
}

// TrendIndicator renders the weekly label, or a dim placeholder while
// there are too few check-ins to call it.
func TrendIndicator(label domain.TrendLabel, sufficient bool) string {
	if !sufficient {
		return StyleDim.Render("○ NOT ENOUGH DATA")
	}
	if label == domain.TrendHigh {
		return StyleRed.Render("▲ HIGH")
	}
	return StyleGreen.Render("● LOW")
}

// DirectionIndicator renders an arrow for the week-over-week change.
// A rising score is bad news, so worsening is red.
func DirectionIndicator(d domain.TrendDirection) string {
	switch d {
	case domain.DirectionWorsening:
		return StyleRed.Render("↑ worsening")
	case domain.DirectionImproving:
		return StyleGreen.Render("↓ improving")
	case domain.DirectionStable:
		return StyleBlue.Render("→ stable")
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
