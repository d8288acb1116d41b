package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/repository"
)

// ErrNoWorkDays is returned when a work-day selection would be empty.
var ErrNoWorkDays = errors.New("at least one work day is required")

type settingsService struct {
	settings repository.SettingsRepo
	prefs    app.Preferences
}

func NewSettingsService(settings repository.SettingsRepo, prefs app.Preferences) SettingsService {
	return &settingsService{settings: settings, prefs: prefs}
}

// WorkDays returns the stored selection, or the configured default while
// the user has not chosen one.
func (s *settingsService) WorkDays(ctx context.Context) (domain.WorkWeek, error) {
	w, ok, err := s.settings.LoadWorkDays(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.defaultWorkDays(), nil
	}
	return w, nil
}

func (s *settingsService) SetWorkDays(ctx context.Context, w domain.WorkWeek) error {
	if len(w.Days()) == 0 {
		return ErrNoWorkDays
	}
	return s.settings.SaveWorkDays(ctx, w)
}

func (s *settingsService) Show(ctx context.Context) (*app.SettingsView, error) {
	w, custom, err := s.settings.LoadWorkDays(ctx)
	if err != nil {
		return nil, err
	}
	if !custom {
		w = s.defaultWorkDays()
	}
	idx, err := s.settings.LoadRotationIndex(ctx)
	if err != nil {
		return nil, err
	}

	loc := "Local"
	if s.prefs.Location != nil {
		loc = s.prefs.Location.String()
	}
	return &app.SettingsView{
		WorkDays:       w,
		CustomWorkDays: custom,
		WeekStart:      s.prefs.WeekStart,
		Location:       loc,
		RotationIndex:  idx,
	}, nil
}

func (s *settingsService) defaultWorkDays() domain.WorkWeek {
	if s.prefs.DefaultWorkDays == 0 {
		return domain.DefaultWorkWeek
	}
	return s.prefs.DefaultWorkDays
}
