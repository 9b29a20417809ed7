package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time: should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"schema_meta", "recipes", "overrides", "exercises", "settings",
		"calorie_logs", "training_logs", "food_suggestions",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_calorie_logs_date", "idx_training_logs_date"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_TrainingRatingConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO training_logs (id, date, timestamp, type, rating, duration_min)
		VALUES ('t1', '2026-01-05', '2026-01-05T20:00:00Z', 'Volleybal', 11, 90)`)
	require.Error(t, err)

	_, err = db.Exec(`INSERT INTO training_logs (id, date, timestamp, type, rating, duration_min)
		VALUES ('t2', '2026-01-05', '2026-01-05T20:00:00Z', 'Volleybal', 7, 90)`)
	require.NoError(t, err)
}
