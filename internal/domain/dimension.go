package domain

import (
	"fmt"
	"strings"
)

// Dimension identifies one of the three survey categories feeding the daily score.
type Dimension string

const (
	DimensionExhaustion Dimension = "exhaustion"
	DimensionBoredom    Dimension = "boredom"
	DimensionEfficiency Dimension = "efficiency"
)

// Dimensions lists every dimension in catalog order. The order is stable
// across runs and determines the order questions are asked in.
var Dimensions = []Dimension{DimensionExhaustion, DimensionBoredom, DimensionEfficiency}

// Answer scale bounds shared by every dimension.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

func (d Dimension) Valid() bool {
	switch d {
	case DimensionExhaustion, DimensionBoredom, DimensionEfficiency:
		return true
	}
	return false
}

// DisplayName returns the capitalized label shown to users.
func (d Dimension) DisplayName() string {
	switch d {
	case DimensionExhaustion:
		return "Exhaustion"
	case DimensionBoredom:
		return "Boredom"
	case DimensionEfficiency:
		return "Efficiency"
	default:
		return string(d)
	}
}

// Inverted reports whether a high raw answer on this dimension means low risk.
func (d Dimension) Inverted() bool {
	return d == DimensionEfficiency
}

// ParseDimension accepts a dimension identifier in any case.
func ParseDimension(s string) (Dimension, error) {
	d := Dimension(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q (expected exhaustion, boredom or efficiency)", s)
	}
	return d, nil
}
