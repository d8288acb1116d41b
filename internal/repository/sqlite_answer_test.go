package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ember/internal/domain"
	"github.com/alexanderramin/ember/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRepo_CreateBatchAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	records := NewSQLiteRecordRepo(db)
	answers := NewSQLiteAnswerRepo(db)
	ctx := context.Background()

	at := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	rec := testutil.NewTestRecord(testutil.Day(2025, 3, 12))
	require.NoError(t, records.Append(ctx, rec))

	batch := testutil.NewTestAnswers(at, 7, 5, 4, 2)
	// Insert out of catalog order; listing restores it.
	require.NoError(t, answers.CreateBatch(ctx, rec.ID, []domain.DailyAnswer{batch[2], batch[0], batch[1]}))

	got, err := answers.ListByRecord(ctx, rec.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.DimensionExhaustion, got[0].Dimension)
	assert.Equal(t, domain.DimensionBoredom, got[1].Dimension)
	assert.Equal(t, domain.DimensionEfficiency, got[2].Dimension)
	assert.Equal(t, 5, got[0].Value)
	assert.Equal(t, 2, got[2].Value)
	assert.Equal(t, 7, got[1].QuestionIndex)
	assert.True(t, at.Equal(got[0].AnsweredAt))
}

func TestAnswerRepo_CreateBatch_RequiresRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	answers := NewSQLiteAnswerRepo(db)

	batch := testutil.NewTestAnswers(time.Now(), 0, 3, 3, 3)
	err := answers.CreateBatch(context.Background(), "no-such-record", batch)
	assert.Error(t, err)
}

func TestAnswerRepo_ListByRecord_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	answers := NewSQLiteAnswerRepo(db)

	got, err := answers.ListByRecord(context.Background(), "none")
	require.NoError(t, err)
	assert.Empty(t, got)
}
