package domain

// RiskBand is a coarse banner classification of a single score.
type RiskBand string

const (
	BandLow      RiskBand = "low"
	BandModerate RiskBand = "moderate"
	BandHigh     RiskBand = "high"
)

// TrendLabel is the overall risk label for the trailing week.
type TrendLabel string

const (
	TrendLow  TrendLabel = "Low"
	TrendHigh TrendLabel = "High"
)

// TrendDirection compares the current window with the previous one.
type TrendDirection string

const (
	DirectionImproving TrendDirection = "improving"
	DirectionStable    TrendDirection = "stable"
	DirectionWorsening TrendDirection = "worsening"
)

// WindowKind selects the chart window.
type WindowKind string

const (
	WindowWeek  WindowKind = "week"
	WindowMonth WindowKind = "month"
)

// ValidWindowKinds is the canonical set of accepted window strings.
var ValidWindowKinds = map[string]bool{
	"week": true, "month": true,
}

// CheckInState tracks a single day's question flow.
type CheckInState string

const (
	CheckInIdle                  CheckInState = "idle"
	CheckInAnswering             CheckInState = "answering"
	CheckInSubmitted             CheckInState = "submitted"
	CheckInAlreadyCompletedToday CheckInState = "already_completed_today"
	CheckInError                 CheckInState = "error"
)
