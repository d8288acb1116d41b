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

func TestSettingsRepo_RotationIndex_DefaultsToZero(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	idx, err := repo.LoadRotationIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestSettingsRepo_RotationIndex_SaveLoad(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SaveRotationIndex(ctx, 13))
	idx, err := repo.LoadRotationIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, idx)
}

func TestSettingsRepo_RotationIndex_MissingRowFallsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	_, err := db.Exec(`DELETE FROM settings`)
	require.NoError(t, err)

	idx, err := repo.LoadRotationIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	require.NoError(t, repo.SaveRotationIndex(ctx, 2))
	idx, err = repo.LoadRotationIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestSettingsRepo_WorkDays(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)
	ctx := context.Background()

	_, ok, err := repo.LoadWorkDays(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "unset until chosen")

	monFri := domain.NewWorkWeek(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday)
	require.NoError(t, repo.SaveWorkDays(ctx, monFri))

	got, ok, err := repo.LoadWorkDays(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, monFri, got)

	// Saving work days leaves the rotation untouched.
	require.NoError(t, repo.SaveRotationIndex(ctx, 5))
	require.NoError(t, repo.SaveWorkDays(ctx, domain.DefaultWorkWeek))
	idx, err := repo.LoadRotationIndex(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestSettingsRepo_WorkDays_CorruptValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSettingsRepo(db)

	_, err := db.Exec(`UPDATE settings SET work_days = 'sun,funday' WHERE id = 'default'`)
	require.NoError(t, err)

	_, _, err = repo.LoadWorkDays(context.Background())
	assert.Error(t, err)
}
