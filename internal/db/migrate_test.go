package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO daily_records (id, day, risk_score, completed_at, created_at)
		VALUES ('r1', '2025-03-11', 4.0, '2025-03-12T02:30:00Z', '2025-03-12T02:30:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE settings SET rotation_index = 7 WHERE id = 'default'`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	// The stored day is the local calendar day and is never rederived from
	// the UTC completion time.
	var day string
	require.NoError(t, db.QueryRow(`SELECT day FROM daily_records WHERE id = 'r1'`).Scan(&day))
	assert.Equal(t, "2025-03-11", day)

	var rotation int
	require.NoError(t, db.QueryRow(`SELECT rotation_index FROM settings WHERE id = 'default'`).Scan(&rotation))
	assert.Equal(t, 7, rotation)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"daily_records", "survey_answers", "settings"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_daily_records_day",
		"idx_daily_records_completed",
		"idx_survey_answers_record",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_SeedsDefaultSettings(t *testing.T) {
	db := openTestDB(t)

	var rotation int
	var workDays sql.NullString
	err := db.QueryRow(`SELECT rotation_index, work_days FROM settings WHERE id = 'default'`).Scan(&rotation, &workDays)
	require.NoError(t, err)
	assert.Equal(t, 0, rotation)
	assert.False(t, workDays.Valid, "work days stay unset until the user picks them")
}

func TestMigrate_CheckConstraints(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name  string
		query string
		args  []any
	}{
		{
			name:  "score below range",
			query: `INSERT INTO daily_records (id, day, risk_score, completed_at, created_at) VALUES (?, ?, ?, ?, ?)`,
			args:  []any{"r1", "2025-03-12", 0.5, "2025-03-12T18:00:00Z", "2025-03-12T18:00:00Z"},
		},
		{
			name:  "rotation index out of range",
			query: `INSERT INTO daily_records (id, day, risk_score, rotation_index, completed_at, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"r2", "2025-03-12", 3.0, 20, "2025-03-12T18:00:00Z", "2025-03-12T18:00:00Z"},
		},
		{
			name:  "missing day",
			query: `INSERT INTO daily_records (id, risk_score, completed_at, created_at) VALUES (?, ?, ?, ?)`,
			args:  []any{"r3", 3.0, "2025-03-12T02:00:00Z", "2025-03-12T02:00:00Z"},
		},
		{
			name:  "malformed day",
			query: `INSERT INTO daily_records (id, day, risk_score, completed_at, created_at) VALUES (?, ?, ?, ?, ?)`,
			args:  []any{"r4", "", 3.0, "2025-03-12T02:00:00Z", "2025-03-12T02:00:00Z"},
		},
		{
			name:  "unknown dimension",
			query: `INSERT INTO survey_answers (id, record_id, dimension, question_index, value, answered_at) VALUES (?, ?, ?, ?, ?, ?)`,
			args:  []any{"a1", "r0", "joy", 0, 3, "2025-03-12T18:00:00Z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := db.Exec(tt.query, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestMigrate_AnswersCascadeWithRecord(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO daily_records (id, day, risk_score, completed_at, created_at)
		VALUES ('r1', '2025-03-12', 3.0, '2025-03-12T18:00:00Z', '2025-03-12T18:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO survey_answers (id, record_id, dimension, question_index, value, answered_at)
		VALUES ('a1', 'r1', 'exhaustion', 4, 3, '2025-03-12T18:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM daily_records WHERE id = 'r1'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM survey_answers`).Scan(&count))
	assert.Equal(t, 0, count)
}
