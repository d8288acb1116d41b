package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/repository"
	"github.com/alexanderramin/ember/internal/scoring"
	"github.com/alexanderramin/ember/internal/survey"
	"github.com/google/uuid"
)

type checkInService struct {
	catalog  *survey.Catalog
	records  repository.RecordRepo
	settings repository.SettingsRepo
	uow      db.UnitOfWork
	prefs    app.Preferences
	observer UseCaseObserver
}

func NewCheckInService(
	catalog *survey.Catalog,
	records repository.RecordRepo,
	settings repository.SettingsRepo,
	uow db.UnitOfWork,
	prefs app.Preferences,
	observers ...UseCaseObserver,
) CheckInService {
	return &checkInService{
		catalog:  catalog,
		records:  records,
		settings: settings,
		uow:      uow,
		prefs:    prefs,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *checkInService) Today(ctx context.Context, req app.TodayRequest) (*app.TodayView, error) {
	now := s.prefs.ResolveNow(req.Now)
	sel, err := s.selection(ctx)
	if err != nil {
		return nil, err
	}

	view := &app.TodayView{
		Date:          domain.CivilDate(now),
		RotationIndex: sel.RotationIndex,
		Questions:     sel.Questions,
	}
	todays, err := s.records.QueryRange(ctx, now, now)
	if err != nil {
		return nil, err
	}
	if len(todays) > 0 {
		latest := latestRecord(todays)
		view.CompletedToday = true
		view.Record = &latest
	}
	return view, nil
}

func (s *checkInService) Begin(ctx context.Context, req app.TodayRequest) (c *survey.Collector, err error) {
	startedAt := time.Now()
	now := s.prefs.ResolveNow(req.Now)
	fields := map[string]any{"day": domain.DayKey(now)}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "begin-checkin",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	stored, err := s.settings.LoadRotationIndex(ctx)
	if err != nil {
		return nil, err
	}
	idx, inRange := survey.NormalizeRotationIndex(stored)
	fields["rotation_index"] = idx
	if !inRange {
		// Recovered: the stored index is rewritten on the next submit.
		fields["invalid_rotation_index"] = stored
	}

	done, err := s.records.HasRecordForDay(ctx, now)
	if err != nil {
		return nil, err
	}
	fields["completed_today"] = done
	return survey.NewCollector(s.catalog.SelectToday(idx), done), nil
}

func (s *checkInService) Submit(ctx context.Context, c *survey.Collector) (result *app.CheckInResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{"rotation_index": c.Selection().RotationIndex}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "submit-checkin",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	switch c.State() {
	case domain.CheckInAlreadyCompletedToday:
		return nil, survey.ErrAlreadyCompletedToday
	case domain.CheckInSubmitted:
		return nil, fmt.Errorf("check-in already submitted")
	}

	answers := c.Answers()
	record, err := scoring.ComputeDailyScore(answers)
	if err != nil {
		var insufficient *scoring.InsufficientAnswersError
		if errors.As(err, &insufficient) {
			fields["missing"] = len(insufficient.Missing)
		}
		c.MarkFailed(err)
		return nil, err
	}
	record.ID = uuid.New().String()
	record.RotationIndex = c.Selection().RotationIndex
	for i := range answers {
		answers[i].ID = uuid.New().String()
	}
	next := c.Selection().NextRotationIndex

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		txAnswers := repository.NewSQLiteAnswerRepo(tx)
		txSettings := repository.NewSQLiteSettingsRepo(tx)

		done, err := txRecords.HasRecordForDay(ctx, record.Date)
		if err != nil {
			return err
		}
		if done {
			return survey.ErrAlreadyCompletedToday
		}
		if err := txRecords.Append(ctx, &record); err != nil {
			return err
		}
		if err := txAnswers.CreateBatch(ctx, record.ID, answers); err != nil {
			return err
		}
		return txSettings.SaveRotationIndex(ctx, next)
	})
	if err != nil {
		if errors.Is(err, survey.ErrAlreadyCompletedToday) {
			return nil, err
		}
		c.MarkFailed(err)
		return nil, fmt.Errorf("saving check-in: %w", err)
	}
	c.MarkSubmitted()

	fields["risk_score"] = record.RiskScore
	fields["is_risk_day"] = record.IsRiskDay
	return &app.CheckInResult{
		Record:            record,
		Answers:           answers,
		NextRotationIndex: next,
		Band:              scoring.Band(record.RiskScore),
		DisplayPct:        scoring.DisplayPercent(record.RiskScore),
	}, nil
}

// SubmitValues runs a whole session from a value map. Every answer is
// stamped with the same time.
func (s *checkInService) SubmitValues(ctx context.Context, req app.SubmitCheckInRequest) (*app.CheckInResult, error) {
	now := s.prefs.ResolveNow(req.Now)
	c, err := s.Begin(ctx, app.TodayRequest{Now: &now})
	if err != nil {
		return nil, err
	}
	if c.State() == domain.CheckInAlreadyCompletedToday {
		return nil, survey.ErrAlreadyCompletedToday
	}
	for _, d := range domain.Dimensions {
		v, ok := req.Values[d]
		if !ok {
			continue
		}
		if err := c.Answer(d, v, now); err != nil {
			return nil, err
		}
	}
	return s.Submit(ctx, c)
}

func (s *checkInService) selection(ctx context.Context) (survey.Selection, error) {
	stored, err := s.settings.LoadRotationIndex(ctx)
	if err != nil {
		return survey.Selection{}, err
	}
	return s.catalog.SelectToday(stored), nil
}
