package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteCalorieLogRepo implements CalorieLogRepo using a SQLite database.
type SQLiteCalorieLogRepo struct {
	db db.DBTX
}

// NewSQLiteCalorieLogRepo creates a new SQLiteCalorieLogRepo.
func NewSQLiteCalorieLogRepo(conn db.DBTX) *SQLiteCalorieLogRepo {
	return &SQLiteCalorieLogRepo{db: conn}
}

const calorieLogColumns = `id, date, timestamp, food, quantity, type, calories, protein, carbs, fat, image`

func (r *SQLiteCalorieLogRepo) GetAll(ctx context.Context) ([]*domain.CalorieLog, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+calorieLogColumns+` FROM calorie_logs ORDER BY timestamp`)
	if err != nil {
		return nil, fmt.Errorf("listing calorie logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteCalorieLogRepo) GetByID(ctx context.Context, id string) (*domain.CalorieLog, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+calorieLogColumns+` FROM calorie_logs WHERE id = ?`, id)
	l, err := r.scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("calorie log %s: %w", id, ErrNotFound)
	}
	return l, err
}

func (r *SQLiteCalorieLogRepo) ListRange(ctx context.Context, from, to string) ([]*domain.CalorieLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calorieLogColumns+` FROM calorie_logs WHERE date >= ? AND date <= ? ORDER BY timestamp`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("listing calorie logs %s..%s: %w", from, to, err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteCalorieLogRepo) ListSince(ctx context.Context, since time.Time) ([]*domain.CalorieLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calorieLogColumns+` FROM calorie_logs WHERE timestamp >= ? ORDER BY timestamp`,
		timeToString(since))
	if err != nil {
		return nil, fmt.Errorf("listing calorie logs since %s: %w", since.Format(time.RFC3339), err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteCalorieLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.CalorieLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT * FROM (SELECT `+calorieLogColumns+` FROM calorie_logs ORDER BY timestamp DESC LIMIT ?)
		 ORDER BY timestamp`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent calorie logs: %w", err)
	}
	defer rows.Close()
	return r.scanLogs(rows)
}

func (r *SQLiteCalorieLogRepo) FoodFrequencies(ctx context.Context) ([]FoodCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT food, COUNT(*) AS n FROM calorie_logs GROUP BY food ORDER BY n DESC, MAX(timestamp) DESC`)
	if err != nil {
		return nil, fmt.Errorf("counting foods: %w", err)
	}
	defer rows.Close()

	var out []FoodCount
	for rows.Next() {
		var fc FoodCount
		if err := rows.Scan(&fc.Food, &fc.Count); err != nil {
			return nil, fmt.Errorf("scanning food count: %w", err)
		}
		out = append(out, fc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food counts: %w", err)
	}
	return out, nil
}

func (r *SQLiteCalorieLogRepo) Put(ctx context.Context, l *domain.CalorieLog) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calorie_logs (`+calorieLogColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET date = excluded.date, timestamp = excluded.timestamp,
		 food = excluded.food, quantity = excluded.quantity, type = excluded.type,
		 calories = excluded.calories, protein = excluded.protein, carbs = excluded.carbs,
		 fat = excluded.fat, image = excluded.image`,
		l.ID, l.Date, timeToString(l.Timestamp), l.Food, l.Quantity, l.Type,
		l.Calories, l.Protein, l.Carbs, l.Fat, l.Image,
	)
	if err != nil {
		return fmt.Errorf("upserting calorie log: %w", err)
	}
	return nil
}

func (r *SQLiteCalorieLogRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM calorie_logs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting calorie log: %w", err)
	}
	return requireAffected(res, "calorie log "+id)
}

func (r *SQLiteCalorieLogRepo) scanLog(s rowScanner) (*domain.CalorieLog, error) {
	var l domain.CalorieLog
	var ts string
	if err := s.Scan(&l.ID, &l.Date, &ts, &l.Food, &l.Quantity, &l.Type,
		&l.Calories, &l.Protein, &l.Carbs, &l.Fat, &l.Image); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning calorie log: %w", err)
	}
	var err error
	if l.Timestamp, err = parseTime(ts); err != nil {
		return nil, fmt.Errorf("parsing timestamp of calorie log %s: %w", l.ID, err)
	}
	return &l, nil
}

func (r *SQLiteCalorieLogRepo) scanLogs(rows *sql.Rows) ([]*domain.CalorieLog, error) {
	var out []*domain.CalorieLog
	for rows.Next() {
		l, err := r.scanLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating calorie logs: %w", err)
	}
	return out, nil
}
