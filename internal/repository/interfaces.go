package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
)

// RecordRepo is the append-only store of completed check-in days. A day may
// hold more than one record; readers resolve duplicates latest-wins.
type RecordRepo interface {
	Append(ctx context.Context, r *domain.DailyRiskRecord) error
	GetByID(ctx context.Context, id string) (*domain.DailyRiskRecord, error)
	// QueryRange returns records whose calendar day lies in [from, to],
	// ordered by day then completion time.
	QueryRange(ctx context.Context, from, to time.Time) ([]domain.DailyRiskRecord, error)
	HasRecordForDay(ctx context.Context, day time.Time) (bool, error)
	Latest(ctx context.Context) (*domain.DailyRiskRecord, error)
}

type AnswerRepo interface {
	CreateBatch(ctx context.Context, recordID string, answers []domain.DailyAnswer) error
	ListByRecord(ctx context.Context, recordID string) ([]domain.DailyAnswer, error)
}

type SettingsRepo interface {
	LoadRotationIndex(ctx context.Context) (int, error)
	SaveRotationIndex(ctx context.Context, idx int) error
	// LoadWorkDays reports ok=false while the user has never chosen work days.
	LoadWorkDays(ctx context.Context) (w domain.WorkWeek, ok bool, err error)
	SaveWorkDays(ctx context.Context, w domain.WorkWeek) error
}
