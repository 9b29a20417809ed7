package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalorieLogRepo_PutAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)
	ctx := context.Background()

	log := testutil.NewTestCalorieLog("Havermout",
		testutil.WithMacros(domain.Macros{Calories: 187, Protein: 6.5, Carbs: 30, Fat: 3.5}),
		testutil.WithLogType(domain.LogTypeAI))
	log.Image = "data:image/jpeg;base64,AAAA"
	require.NoError(t, repo.Put(ctx, log))

	got, err := repo.GetByID(ctx, log.ID)
	require.NoError(t, err)
	assert.Equal(t, log.Food, got.Food)
	assert.Equal(t, log.Macros(), got.Macros())
	assert.Equal(t, domain.LogTypeAI, got.Type)
	assert.Equal(t, log.Image, got.Image)
	assert.True(t, log.Timestamp.Equal(got.Timestamp))
}

func TestCalorieLogRepo_PutUpdatesInPlace(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)
	ctx := context.Background()

	log := testutil.NewTestCalorieLog("Pasta")
	require.NoError(t, repo.Put(ctx, log))

	log.Calories = 650
	require.NoError(t, repo.Put(ctx, log))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 650.0, all[0].Calories)
}

func TestCalorieLogRepo_ListRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)
	ctx := context.Background()

	for _, d := range []string{"2026-02-20", "2026-02-24", "2026-02-25", "2026-02-27"} {
		require.NoError(t, repo.Put(ctx, testutil.NewTestCalorieLog("Brood", testutil.WithLogDate(d))))
	}

	got, err := repo.ListRange(ctx, "2026-02-24", "2026-02-26")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-02-24", got[0].Date)
	assert.Equal(t, "2026-02-25", got[1].Date)
}

func TestCalorieLogRepo_ListSinceAndRecent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)
	ctx := context.Background()

	base := testutil.FixedNow
	for i := 0; i < 5; i++ {
		ts := base.Add(time.Duration(i) * 10 * time.Hour)
		require.NoError(t, repo.Put(ctx, testutil.NewTestCalorieLog("Item", testutil.WithTimestamp(ts))))
	}

	since, err := repo.ListSince(ctx, base.Add(25*time.Hour))
	require.NoError(t, err)
	assert.Len(t, since, 2)

	recent, err := repo.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.True(t, recent[0].Timestamp.Before(recent[2].Timestamp))
	assert.True(t, recent[2].Timestamp.Equal(base.Add(40*time.Hour)))
}

func TestCalorieLogRepo_FoodFrequencies(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)
	ctx := context.Background()

	for _, f := range []string{"Kwark", "Banaan", "Kwark", "Kwark", "Banaan", "Ei"} {
		require.NoError(t, repo.Put(ctx, testutil.NewTestCalorieLog(f)))
	}

	counts, err := repo.FoodFrequencies(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, FoodCount{Food: "Kwark", Count: 3}, counts[0])
	assert.Equal(t, FoodCount{Food: "Banaan", Count: 2}, counts[1])
}

func TestCalorieLogRepo_RejectsNegativeMacros(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)

	log := testutil.NewTestCalorieLog("Fout", testutil.WithMacros(domain.Macros{Calories: -5}))
	assert.Error(t, repo.Put(context.Background(), log))
}

func TestCalorieLogRepo_DeleteMissing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteCalorieLogRepo(db)

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "not found")
}
