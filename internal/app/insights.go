package app

import (
	"time"

	"github.com/alexanderramin/ember/internal/calendar"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
)

type ChartRequest struct {
	Window domain.WindowKind
	// Reference is any day inside the wanted window; nil means today.
	Reference *time.Time
	Now       *time.Time
}

type ChartResponse struct {
	Window   calendar.WindowSpec
	Title    string
	Points   []domain.ChartPoint
	Summary  insights.Summary
	WorkDays domain.WorkWeek
	Today    time.Time
}

type TrendRequest struct {
	Now *time.Time
}

type TrendResponse struct {
	Trend      insights.Trend
	Band       domain.RiskBand
	DisplayPct float64
}

type HistoryRequest struct {
	Days int
	Now  *time.Time
}

// HistoryResponse lists the authoritative record per day, newest first.
type HistoryResponse struct {
	From    time.Time
	To      time.Time
	Records []domain.DailyRiskRecord
}

func NewHistoryRequest() HistoryRequest {
	return HistoryRequest{Days: 14}
}
