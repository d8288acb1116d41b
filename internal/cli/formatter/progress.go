package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock  = "█"
	emptyBlock   = "░"
	missingBlock = "·"
)

// RenderGauge renders a risk gauge like [████░░░░]  45%. pct is on the
// 0-100 display scale. Unlike a progress bar, fuller is worse, so the bar
// is green below 37.5%, yellow up to 62.5% and red from there.
func RenderGauge(pct float64, width int) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := filledCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", gaugeStyle(pct).Render(bar), pct)
}

// RenderScoreBar renders a borderless bar for one chart bucket, colored
// by the score's band.
func RenderScoreBar(pct float64, width int, band domain.RiskBand) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}
	filled := filledCells(pct, width)
	return BandColor(band).Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// RenderMissingBar renders the placeholder for a day without a check-in.
func RenderMissingBar(width int) string {
	if width < 2 {
		width = 2
	}
	return StyleDim.Render(strings.Repeat(missingBlock, width))
}

func clampPct(pct float64) float64 {
	return math.Max(0, math.Min(100, pct))
}

func filledCells(pct float64, width int) int {
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	return filled
}

// gaugeStyle mirrors the band cut points (2.5 and 3.5 on the 1-5 scale).
func gaugeStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 62.5:
		return StyleRed
	case pct >= 37.5:
		return StyleYellow
	default:
		return StyleGreen
	}
}
