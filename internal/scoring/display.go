package scoring

import (
	"math"

	"github.com/alexanderramin/ember/internal/domain"
)

// Score scale bounds after inversion and averaging.
const (
	MinScore = float64(domain.MinAnswer)
	MaxScore = float64(domain.MaxAnswer)
)

// moderateFloor is where the low band ends.
const moderateFloor = 2.5

// DisplayPercent maps a score linearly onto 0-100 for gauges and bars.
func DisplayPercent(score float64) float64 {
	pct := (score - MinScore) / (MaxScore - MinScore) * 100
	return math.Max(0, math.Min(100, pct))
}

// Band classifies a score for banners. The high band starts at the risk-day threshold.
func Band(score float64) domain.RiskBand {
	switch {
	case score >= RiskDayThreshold:
		return domain.BandHigh
	case score >= moderateFloor:
		return domain.BandModerate
	default:
		return domain.BandLow
	}
}
