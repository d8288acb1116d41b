package app

import (
	"context"

	"github.com/alexanderramin/ember/internal/domain"
)

type TodayUseCase interface {
	Today(ctx context.Context, req TodayRequest) (*TodayView, error)
}

type SubmitCheckInUseCase interface {
	SubmitValues(ctx context.Context, req SubmitCheckInRequest) (*CheckInResult, error)
}

type ChartUseCase interface {
	Chart(ctx context.Context, req ChartRequest) (*ChartResponse, error)
}

type TrendUseCase interface {
	Trend(ctx context.Context, req TrendRequest) (*TrendResponse, error)
}

type HistoryUseCase interface {
	History(ctx context.Context, req HistoryRequest) (*HistoryResponse, error)
}

type SettingsUseCase interface {
	Show(ctx context.Context) (*SettingsView, error)
	SetWorkDays(ctx context.Context, w domain.WorkWeek) error
}
