package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/calendar"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/insights"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/scoring"
)

type insightsService struct {
	records  repository.RecordRepo
	settings SettingsService
	prefs    app.Preferences
	observer UseCaseObserver
}

func NewInsightsService(
	records repository.RecordRepo,
	settings SettingsService,
	prefs app.Preferences,
	observers ...UseCaseObserver,
) InsightsService {
	return &insightsService{
		records:  records,
		settings: settings,
		prefs:    prefs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *insightsService) Chart(ctx context.Context, req app.ChartRequest) (resp *app.ChartResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"window": string(req.Window)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "chart",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.prefs.ResolveNow(req.Now)
	ref := now
	if req.Reference != nil {
		ref = *req.Reference
	}
	kind := req.Window
	if kind == "" {
		kind = domain.WindowWeek
	}
	spec, err := calendar.NewWindow(kind, ref, s.prefs.WeekStart)
	if err != nil {
		return nil, err
	}
	work, err := s.settings.WorkDays(ctx)
	if err != nil {
		return nil, err
	}

	grid := calendar.GridFor(spec)
	records, err := s.records.QueryRange(ctx, grid.First(), grid.Last())
	if err != nil {
		return nil, fmt.Errorf("loading chart records: %w", err)
	}
	points := insights.Bucketize(records, spec, work)
	summary := insights.Summarize(points)
	fields["responded"] = summary.Responded

	return &app.ChartResponse{
		Window:   spec,
		Title:    calendar.Describe(spec),
		Points:   points,
		Summary:  summary,
		WorkDays: work,
		Today:    domain.CivilDate(now),
	}, nil
}

func (s *insightsService) Trend(ctx context.Context, req app.TrendRequest) (resp *app.TrendResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "trend",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	now := s.prefs.ResolveNow(req.Now)
	// Two windows: the current one plus the previous for direction.
	from := now.AddDate(0, 0, -(2*insights.TrendWindowDays - 1))
	records, err := s.records.QueryRange(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("loading trend records: %w", err)
	}

	trend := insights.ClassifyTrend(records, now)
	fields["label"] = string(trend.Label)
	fields["risk_days"] = trend.RiskDayCount
	fields["samples"] = trend.SampleSize

	return &app.TrendResponse{
		Trend:      trend,
		Band:       scoring.Band(trend.AverageScore),
		DisplayPct: scoring.DisplayPercent(trend.AverageScore),
	}, nil
}

func (s *insightsService) History(ctx context.Context, req app.HistoryRequest) (*app.HistoryResponse, error) {
	days := req.Days
	if days <= 0 {
		days = app.NewHistoryRequest().Days
	}
	now := s.prefs.ResolveNow(req.Now)
	from := now.AddDate(0, 0, -(days - 1))

	records, err := s.records.QueryRange(ctx, from, now)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}
	latest := insights.LatestPerDay(records)
	sort.SliceStable(latest, func(i, j int) bool {
		return latest[i].Date.After(latest[j].Date)
	})

	return &app.HistoryResponse{
		From:    domain.CivilDate(from),
		To:      domain.CivilDate(now),
		Records: latest,
	}, nil
}
