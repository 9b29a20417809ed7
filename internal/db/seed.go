package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const seedVersionKey = "seed_version"

// SeedFunc writes seed rows using the transaction it is handed. It must use
// insert-or-ignore semantics so existing user rows are never replaced.
type SeedFunc func(ctx context.Context, tx DBTX) error

// Seed runs fn once per seed version. The version marker is read and written
// in the same transaction as the seed rows, so a seed is either fully applied
// and recorded or not at all. It reports whether fn ran.
func Seed(ctx context.Context, uow UnitOfWork, version int, fn SeedFunc) (bool, error) {
	applied := false
	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		current, err := SeedVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current >= version {
			return nil
		}
		if err := fn(ctx, tx); err != nil {
			return fmt.Errorf("seeding v%d: %w", version, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schema_meta (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			seedVersionKey, strconv.Itoa(version), time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("recording seed version: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// SeedVersion returns the recorded seed version, or 0 for a fresh store.
func SeedVersion(ctx context.Context, q DBTX) (int, error) {
	var raw string
	err := q.QueryRowContext(ctx, `SELECT value FROM schema_meta WHERE key = ?`, seedVersionKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading seed version: %w", err)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("seed version %q: %w", raw, err)
	}
	return v, nil
}
