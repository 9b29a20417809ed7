package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
)

// SQLiteSettingsRepo implements SettingsRepo with JSON-encoded values.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("reading setting %q: %w", key, err)
	}
	if raw == "null" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return false, fmt.Errorf("decoding setting %q: %w", key, err)
	}
	return true, nil
}

func (r *SQLiteSettingsRepo) Put(ctx context.Context, key string, value any) error {
	raw, err := jsonText(value)
	if err != nil {
		return fmt.Errorf("encoding setting %q: %w", key, err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, raw, nowUTC(),
	); err != nil {
		return fmt.Errorf("writing setting %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettingsRepo) PutIfAbsent(ctx context.Context, key string, value any) (bool, error) {
	raw, err := jsonText(value)
	if err != nil {
		return false, fmt.Errorf("encoding setting %q: %w", key, err)
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		key, raw, nowUTC(),
	)
	if err != nil {
		return false, fmt.Errorf("writing setting %q: %w", key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("writing setting %q: %w", key, err)
	}
	return n > 0, nil
}

func (r *SQLiteSettingsRepo) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return requireAffected(res, fmt.Sprintf("setting %q", key))
}

func (r *SQLiteSettingsRepo) Keys(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing setting keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning setting key: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating setting keys: %w", err)
	}
	return keys, nil
}
