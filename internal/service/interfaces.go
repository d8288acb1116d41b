package service

import (
	"context"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/survey"
)

type CheckInService interface {
	Today(ctx context.Context, req app.TodayRequest) (*app.TodayView, error)
	// Begin opens a session for today. The collector starts in
	// CheckInAlreadyCompletedToday when today already has a record.
	Begin(ctx context.Context, req app.TodayRequest) (*survey.Collector, error)
	// Submit scores the collected answers and stores answers, record and
	// the advanced rotation index in one transaction.
	Submit(ctx context.Context, c *survey.Collector) (*app.CheckInResult, error)
	SubmitValues(ctx context.Context, req app.SubmitCheckInRequest) (*app.CheckInResult, error)
}

type InsightsService interface {
	Chart(ctx context.Context, req app.ChartRequest) (*app.ChartResponse, error)
	Trend(ctx context.Context, req app.TrendRequest) (*app.TrendResponse, error)
	History(ctx context.Context, req app.HistoryRequest) (*app.HistoryResponse, error)
}

type SettingsService interface {
	Show(ctx context.Context) (*app.SettingsView, error)
	WorkDays(ctx context.Context) (domain.WorkWeek, error)
	SetWorkDays(ctx context.Context, w domain.WorkWeek) error
}

var (
	_ app.TodayUseCase         = CheckInService(nil)
	_ app.SubmitCheckInUseCase = CheckInService(nil)
	_ app.ChartUseCase         = InsightsService(nil)
	_ app.TrendUseCase         = InsightsService(nil)
	_ app.HistoryUseCase       = InsightsService(nil)
	_ app.SettingsUseCase      = SettingsService(nil)
)
