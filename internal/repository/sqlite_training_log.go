package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteTrainingLogRepo implements TrainingLogRepo using a SQLite database.
type SQLiteTrainingLogRepo struct {
	db db.DBTX
}

// NewSQLiteTrainingLogRepo creates a new SQLiteTrainingLogRepo.
func NewSQLiteTrainingLogRepo(conn db.DBTX) *SQLiteTrainingLogRepo {
	return &SQLiteTrainingLogRepo{db: conn}
}

const trainingLogColumns = `id, date, timestamp, type, rating, duration_min, notes`

func (r *SQLiteTrainingLogRepo) GetAll(ctx context.Context) ([]*domain.TrainingLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+trainingLogColumns+` FROM training_logs ORDER BY timestamp`)
	if err != nil {
		return nil, fmt.Errorf("listing training logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteTrainingLogRepo) GetByID(ctx context.Context, id string) (*domain.TrainingLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+trainingLogColumns+` FROM training_logs WHERE id = ?`, id)
	l, err := r.scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("training log %s: %w", id, ErrNotFound)
	}
	return l, err
}

func (r *SQLiteTrainingLogRepo) ListRange(ctx context.Context, from, to string) ([]*domain.TrainingLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+trainingLogColumns+` FROM training_logs WHERE date >= ? AND date <= ? ORDER BY timestamp`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("listing training logs %s..%s: %w", from, to, err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteTrainingLogRepo) Put(ctx context.Context, l *domain.TrainingLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO training_logs (`+trainingLogColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET date = excluded.date, timestamp = excluded.timestamp,
		 type = excluded.type, rating = excluded.rating, duration_min = excluded.duration_min,
		 notes = excluded.notes`,
		l.ID, l.Date, timeToString(l.Timestamp), l.Type, l.Rating, l.DurationMin, l.Notes,
	)
	if err != nil {
		return fmt.Errorf("upserting training log: %w", err)
	}
	return nil
}

func (r *SQLiteTrainingLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM training_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting training log: %w", err)
	}
	return requireAffected(res, "training log "+id)
}

func (r *SQLiteTrainingLogRepo) scanLog(s rowScanner) (*domain.TrainingLog, error) {
	var l domain.TrainingLog
	var ts string
	if err := s.Scan(&l.ID, &l.Date, &ts, &l.Type, &l.Rating, &l.DurationMin, &l.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning training log: %w", err)
	}
	var err error
	if l.Timestamp, err = parseTime(ts); err != nil {
		return nil, fmt.Errorf("parsing timestamp of training log %s: %w", l.ID, err)
	}
	return &l, nil
}

func (r *SQLiteTrainingLogRepo) scanLogs(rows *sql.Rows) ([]*domain.TrainingLog, error) {
	var out []*domain.TrainingLog
	for rows.Next() {
		l, err := r.scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating training logs: %w", err)
	}
	return out, nil
}
