package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRecipes(t *testing.T, uow db.UnitOfWork) int {
	t.Helper()
	var n int
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&n)
	}))
	return n
}

func insertRecipe(ctx context.Context, tx db.DBTX) error {
	_, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO recipes (id, title) VALUES (1, 'Pasta Pesto')`)
	return err
}

func TestSeed_RunsOncePerVersion(t *testing.T) {
	uow := openTestDB(t)
	ctx := context.Background()

	calls := 0
	fn := func(ctx context.Context, tx db.DBTX) error {
		calls++
		return insertRecipe(ctx, tx)
	}

	applied, err := db.Seed(ctx, uow, 1, fn)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = db.Seed(ctx, uow, 1, fn)
	require.NoError(t, err)
	assert.False(t, applied)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, countRecipes(t, uow))
}

func TestSeed_NewVersionRunsAgain(t *testing.T) {
	uow := openTestDB(t)
	ctx := context.Background()

	_, err := db.Seed(ctx, uow, 1, insertRecipe)
	require.NoError(t, err)

	applied, err := db.Seed(ctx, uow, 2, insertRecipe)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 1, countRecipes(t, uow))

	var version int
	require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		version, err = db.SeedVersion(ctx, tx)
		return err
	}))
	assert.Equal(t, 2, version)
}

func TestSeed_FailureLeavesNoMarker(t *testing.T) {
	uow := openTestDB(t)
	ctx := context.Background()

	_, err := db.Seed(ctx, uow, 1, func(ctx context.Context, tx db.DBTX) error {
		if err := insertRecipe(ctx, tx); err != nil {
			return err
		}
		return errors.New("disk full")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 0, countRecipes(t, uow))

	applied, err := db.Seed(ctx, uow, 1, insertRecipe)
	require.NoError(t, err)
	assert.True(t, applied)
}
