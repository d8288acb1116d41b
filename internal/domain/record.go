package domain

import "time"

// DailyRiskRecord is the persisted outcome of one completed check-in day.
// Records are append-only; when a day holds more than one record the one
// with the latest CompletedAt is authoritative.
type DailyRiskRecord struct {
	ID            string
	Date          time.Time // civil date, see CivilDate
	RiskScore     float64
	IsRiskDay     bool
	RotationIndex int
	CompletedAt   time.Time
}

// ChartPoint is one derived display bucket. Value is meaningless when
// HasResponse is false.
type ChartPoint struct {
	Label       string
	Value       float64
	Date        time.Time
	IsWorkDay   bool
	HasResponse bool
	IsRiskDay   bool
}
