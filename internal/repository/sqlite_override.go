package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteOverrideRepo implements OverrideRepo using a SQLite database.
type SQLiteOverrideRepo struct {
	db db.DBTX
}

// NewSQLiteOverrideRepo creates a new SQLiteOverrideRepo.
func NewSQLiteOverrideRepo(conn db.DBTX) *SQLiteOverrideRepo {
	return &SQLiteOverrideRepo{db: conn}
}

func (r *SQLiteOverrideRepo) GetAll(ctx context.Context) ([]*domain.OverrideEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, type, title, details, icon FROM overrides ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("listing overrides: %w", err)
	}
	defer rows.Close()

	var out []*domain.OverrideEntry
	for rows.Next() {
		var e domain.OverrideEntry
		if err := rows.Scan(&e.Date, &e.Type, &e.Title, &e.Details, &e.Icon); err != nil {
			return nil, fmt.Errorf("scanning override row: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating overrides: %w", err)
	}
	return out, nil
}

func (r *SQLiteOverrideRepo) GetByDate(ctx context.Context, date string) (*domain.OverrideEntry, error) {
	var e domain.OverrideEntry
	err := r.db.QueryRowContext(ctx,
		`SELECT date, type, title, details, icon FROM overrides WHERE date = ?`, date,
	).Scan(&e.Date, &e.Type, &e.Title, &e.Details, &e.Icon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("override %s: %w", date, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning override: %w", err)
	}
	return &e, nil
}

// Put replaces any existing entry for the date.
func (r *SQLiteOverrideRepo) Put(ctx context.Context, e *domain.OverrideEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO overrides (date, type, title, details, icon, updated_at) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET type = excluded.type, title = excluded.title,
		 details = excluded.details, icon = excluded.icon, updated_at = excluded.updated_at`,
		e.Date, string(e.Type), e.Title, e.Details, string(e.Icon), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("upserting override %s: %w", e.Date, err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) InsertIfAbsent(ctx context.Context, e *domain.OverrideEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO overrides (date, type, title, details, icon, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		e.Date, string(e.Type), e.Title, e.Details, string(e.Icon), nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting override %s: %w", e.Date, err)
	}
	return nil
}

func (r *SQLiteOverrideRepo) Delete(ctx context.Context, date string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM overrides WHERE date = ?`, date)
	if err != nil {
		return fmt.Errorf("deleting override: %w", err)
	}
	return requireAffected(res, "override "+date)
}
