package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteExerciseRepo implements ExerciseRepo using a SQLite database.
type SQLiteExerciseRepo struct {
	db db.DBTX
}

// NewSQLiteExerciseRepo creates a new SQLiteExerciseRepo.
func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) GetAll(ctx context.Context) ([]*domain.Exercise, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, reps, description FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	var out []*domain.Exercise
	for rows.Next() {
		var e domain.Exercise
		if err := rows.Scan(&e.ID, &e.Title, &e.Reps, &e.Desc); err != nil {
			return nil, fmt.Errorf("scanning exercise row: %w", err)
		}
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return out, nil
}

func (r *SQLiteExerciseRepo) Put(ctx context.Context, e *domain.Exercise) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exercises (id, title, reps, description) VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET title = excluded.title, reps = excluded.reps, description = excluded.description`,
		e.ID, e.Title, e.Reps, e.Desc,
	)
	if err != nil {
		return fmt.Errorf("upserting exercise %d: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) InsertIfAbsent(ctx context.Context, e *domain.Exercise) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO exercises (id, title, reps, description) VALUES (?, ?, ?, ?)`,
		e.ID, e.Title, e.Reps, e.Desc,
	)
	if err != nil {
		return fmt.Errorf("inserting exercise %d: %w", e.ID, err)
	}
	return nil
}

func (r *SQLiteExerciseRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM exercises WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting exercise: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("exercise %d", id))
}
