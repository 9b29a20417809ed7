package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingLogRepo_CRUD(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTrainingLogRepo(db)
	ctx := context.Background()

	log := testutil.NewTestTrainingLog("Volleybal", testutil.WithRating(8), testutil.WithDuration(120))
	log.Notes = "Goed gesprongen"
	require.NoError(t, repo.Put(ctx, log))

	got, err := repo.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Rating)
	assert.Equal(t, 120, got.DurationMin)
	assert.Equal(t, "Goed gesprongen", got.Notes)

	require.NoError(t, repo.Delete(ctx, log.ID))
	_, err = repo.GetByID(ctx, log.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTrainingLogRepo_ListRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTrainingLogRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testutil.NewTestTrainingLog("Kracht", testutil.WithTrainingDate("2026-02-19"))))
	require.NoError(t, repo.Put(ctx, testutil.NewTestTrainingLog("Volleybal", testutil.WithTrainingDate("2026-02-23"))))

	got, err := repo.ListRange(ctx, "2026-02-20", "2026-02-26")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Volleybal", got[0].Type)
}

func TestTrainingLogRepo_RejectsOutOfRangeRating(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTrainingLogRepo(db)

	err := repo.Put(context.Background(), testutil.NewTestTrainingLog("Volleybal", testutil.WithRating(0)))
	assert.Error(t, err)
}
