package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS daily_records (
		id             TEXT PRIMARY KEY,
		day            TEXT NOT NULL CHECK(length(day) = 10),
		risk_score     REAL NOT NULL CHECK(risk_score >= 1 AND risk_score <= 5),
		is_risk_day    INTEGER NOT NULL DEFAULT 0,
		rotation_index INTEGER NOT NULL DEFAULT 0
		               CHECK(rotation_index >= 0 AND rotation_index < 20),
		completed_at   TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_records_day ON daily_records(day)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_records_completed ON daily_records(completed_at)`,

	`CREATE TABLE IF NOT EXISTS survey_answers (
		id             TEXT PRIMARY KEY,
		record_id      TEXT NOT NULL REFERENCES daily_records(id) ON DELETE CASCADE,
		dimension      TEXT NOT NULL
		               CHECK(dimension IN ('exhaustion','boredom','efficiency')),
		question_index INTEGER NOT NULL
		               CHECK(question_index >= 0 AND question_index < 20),
		value          INTEGER NOT NULL CHECK(value >= 1 AND value <= 5),
		answered_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_survey_answers_record ON survey_answers(record_id)`,

	`CREATE TABLE IF NOT EXISTS settings (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		rotation_index INTEGER NOT NULL DEFAULT 0,
		-- NULL means the configured default work week applies.
		work_days      TEXT,
		updated_at     TEXT
	)`,

	// Seed default settings row
	`INSERT OR IGNORE INTO settings (id) VALUES ('default')`,
}
