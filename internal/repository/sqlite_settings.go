package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo on the single 'default' settings row.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

// LoadRotationIndex returns the stored index as-is; callers normalize it.
func (r *SQLiteSettingsRepo) LoadRotationIndex(ctx context.Context) (int, error) {
	var idx int
	err := r.db.QueryRowContext(ctx, `SELECT rotation_index FROM settings WHERE id = 'default'`).Scan(&idx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("loading rotation index: %w", err)
	}
	return idx, nil
}

func (r *SQLiteSettingsRepo) SaveRotationIndex(ctx context.Context, idx int) error {
	query := `INSERT INTO settings (id, rotation_index, updated_at) VALUES ('default', ?, ?)
		ON CONFLICT(id) DO UPDATE SET rotation_index = excluded.rotation_index, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, idx, nowUTC()); err != nil {
		return fmt.Errorf("saving rotation index: %w", err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) LoadWorkDays(ctx context.Context) (domain.WorkWeek, bool, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT work_days FROM settings WHERE id = 'default'`).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("loading work days: %w", err)
	}
	if !raw.Valid {
		return 0, false, nil
	}
	w, err := domain.ParseWorkWeek(raw.String)
	if err != nil {
		return 0, false, fmt.Errorf("parsing stored work days: %w", err)
	}
	return w, true, nil
}

func (r *SQLiteSettingsRepo) SaveWorkDays(ctx context.Context, w domain.WorkWeek) error {
	query := `INSERT INTO settings (id, work_days, updated_at) VALUES ('default', ?, ?)
		ON CONFLICT(id) DO UPDATE SET work_days = excluded.work_days, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, w.String(), nowUTC()); err != nil {
		return fmt.Errorf("saving work days: %w", err)
	}
	return nil
}
