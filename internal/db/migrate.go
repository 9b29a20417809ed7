package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillCalorieLogType(db); err != nil {
		return fmt.Errorf("backfilling calorie log type: %w", err)
	}
	return nil
}

// backfillCalorieLogType marks logs written before the type column existed.
// Logs with an image can only have come from the vision analysis.
func backfillCalorieLogType(db *sql.DB) error {
	ctx := context.Background()
	if _, err := db.ExecContext(ctx,
		`UPDATE calorie_logs SET type = 'ai' WHERE type = '' AND image != ''`); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx,
		`UPDATE calorie_logs SET type = 'manual' WHERE type = ''`)
	return err
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schema_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS recipes (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		tags TEXT NOT NULL DEFAULT '[]',
		time TEXT NOT NULL DEFAULT '',
		ingredients TEXT NOT NULL DEFAULT '[]',
		instructions TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS overrides (
		date TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT 'coffee',
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercises (
		id INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		reps TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS calorie_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		food TEXT NOT NULL,
		quantity TEXT NOT NULL DEFAULT '',
		calories REAL NOT NULL DEFAULT 0 CHECK (calories >= 0),
		protein REAL NOT NULL DEFAULT 0 CHECK (protein >= 0),
		carbs REAL NOT NULL DEFAULT 0 CHECK (carbs >= 0),
		fat REAL NOT NULL DEFAULT 0 CHECK (fat >= 0),
		image TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_calorie_logs_date ON calorie_logs(date)`,

	`CREATE TABLE IF NOT EXISTS training_logs (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		type TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 10),
		duration_min INTEGER NOT NULL CHECK (duration_min > 0),
		notes TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_training_logs_date ON training_logs(date)`,

	`CREATE TABLE IF NOT EXISTS food_suggestions (
		name TEXT PRIMARY KEY,
		quantity TEXT NOT NULL DEFAULT '',
		calories REAL NOT NULL DEFAULT 0,
		protein REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fat REAL NOT NULL DEFAULT 0
	)`,

	// Origin of a calorie log: ai, manual or suggestion.
	`ALTER TABLE calorie_logs ADD COLUMN type TEXT NOT NULL DEFAULT ''`,
}
