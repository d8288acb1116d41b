package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/ember/internal/db"
	"github.com/alexanderramin/ember/internal/domain"
)

// SQLiteAnswerRepo implements AnswerRepo using a SQLite database.
type SQLiteAnswerRepo struct {
	db db.DBTX
}

// NewSQLiteAnswerRepo creates a new SQLiteAnswerRepo.
func NewSQLiteAnswerRepo(conn db.DBTX) *SQLiteAnswerRepo {
	return &SQLiteAnswerRepo{db: conn}
}

// CreateBatch inserts the answers that produced one record. Run it inside a
// unit of work together with the record insert.
func (r *SQLiteAnswerRepo) CreateBatch(ctx context.Context, recordID string, answers []domain.DailyAnswer) error {
	query := `INSERT INTO survey_answers (id, record_id, dimension, question_index, value, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	for _, a := range answers {
		_, err := r.db.ExecContext(ctx, query,
			a.ID,
			recordID,
			string(a.Dimension),
			a.QuestionIndex,
			a.Value,
			formatTimestamp(a.AnsweredAt),
		)
		if err != nil {
			return fmt.Errorf("inserting %s answer: %w", a.Dimension, err)
		}
	}
	return nil
}

func (r *SQLiteAnswerRepo) ListByRecord(ctx context.Context, recordID string) ([]domain.DailyAnswer, error) {
	query := `SELECT id, dimension, question_index, value, answered_at
		FROM survey_answers WHERE record_id = ?
		ORDER BY CASE dimension
			WHEN 'exhaustion' THEN 0
			WHEN 'boredom' THEN 1
			ELSE 2 END`
	rows, err := r.db.QueryContext(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("listing answers by record: %w", err)
	}
	defer rows.Close()

	var answers []domain.DailyAnswer
	for rows.Next() {
		var a domain.DailyAnswer
		var dim, answeredStr string
		if err := rows.Scan(&a.ID, &dim, &a.QuestionIndex, &a.Value, &answeredStr); err != nil {
			return nil, fmt.Errorf("scanning answer row: %w", err)
		}
		a.Dimension = domain.Dimension(dim)
		a.AnsweredAt, err = time.Parse(timestampLayout, answeredStr)
		if err != nil {
			return nil, fmt.Errorf("parsing answered_at: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating answers: %w", err)
	}
	return answers, nil
}
