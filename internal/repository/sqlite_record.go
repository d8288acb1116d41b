package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/domain"
)

const recordColumns = `id, day, risk_score, is_risk_day, rotation_index, completed_at`

// SQLiteRecordRepo implements RecordRepo using a SQLite database.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

func (r *SQLiteRecordRepo) Append(ctx context.Context, rec *domain.DailyRiskRecord) error {
	query := `INSERT INTO daily_records (id, day, risk_score, is_risk_day, rotation_index, completed_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		dayString(rec.Date),
		rec.RiskScore,
		boolToInt(rec.IsRiskDay),
		rec.RotationIndex,
		formatTimestamp(rec.CompletedAt),
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting daily record: %w", err)
	}
	return nil
}

func (r *SQLiteRecordRepo) GetByID(ctx context.Context, id string) (*domain.DailyRiskRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records WHERE id = ?`
	return r.scanRecord(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRecordRepo) QueryRange(ctx context.Context, from, to time.Time) ([]domain.DailyRiskRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records
		WHERE day >= ? AND day <= ?
		ORDER BY day, completed_at`
	rows, err := r.db.QueryContext(ctx, query, dayString(from), dayString(to))
	if err != nil {
		return nil, fmt.Errorf("querying daily records: %w", err)
	}
	defer rows.Close()
	return r.scanRecords(rows)
}

func (r *SQLiteRecordRepo) HasRecordForDay(ctx context.Context, day time.Time) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM daily_records WHERE day = ?)`, dayString(day)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking daily record: %w", err)
	}
	return intToBool(exists), nil
}

func (r *SQLiteRecordRepo) Latest(ctx context.Context) (*domain.DailyRiskRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM daily_records
		ORDER BY day DESC, completed_at DESC LIMIT 1`
	return r.scanRecord(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteRecordRepo) scanRecord(row *sql.Row) (*domain.DailyRiskRecord, error) {
	var rec domain.DailyRiskRecord
	var dayStr, completedStr string
	var isRisk int

	err := row.Scan(&rec.ID, &dayStr, &rec.RiskScore, &isRisk, &rec.RotationIndex, &completedStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("daily record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily record: %w", err)
	}
	rec.IsRiskDay = intToBool(isRisk)
	if err := populateRecord(&rec, dayStr, completedStr); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *SQLiteRecordRepo) scanRecords(rows *sql.Rows) ([]domain.DailyRiskRecord, error) {
	var records []domain.DailyRiskRecord
	for rows.Next() {
		var rec domain.DailyRiskRecord
		var dayStr, completedStr string
		var isRisk int

		if err := rows.Scan(&rec.ID, &dayStr, &rec.RiskScore, &isRisk, &rec.RotationIndex, &completedStr); err != nil {
			return nil, fmt.Errorf("scanning daily record row: %w", err)
		}
		rec.IsRiskDay = intToBool(isRisk)
		if err := populateRecord(&rec, dayStr, completedStr); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily records: %w", err)
	}
	return records, nil
}

// populateRecord fills in parsed time fields after scanning raw strings.
func populateRecord(rec *domain.DailyRiskRecord, dayStr, completedStr string) error {
	var err error
	rec.Date, err = time.Parse(domain.DateLayout, dayStr)
	if err != nil {
		return fmt.Errorf("parsing day: %w", err)
	}
	rec.CompletedAt, err = time.Parse(timestampLayout, completedStr)
	if err != nil {
		return fmt.Errorf("parsing completed_at: %w", err)
	}
	return nil
}
