package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteFoodSuggestionRepo implements FoodSuggestionRepo using a SQLite database.
type SQLiteFoodSuggestionRepo struct {
	db db.DBTX
}

// NewSQLiteFoodSuggestionRepo creates a new SQLiteFoodSuggestionRepo.
func NewSQLiteFoodSuggestionRepo(conn db.DBTX) *SQLiteFoodSuggestionRepo {
	return &SQLiteFoodSuggestionRepo{db: conn}
}

func (r *SQLiteFoodSuggestionRepo) GetAll(ctx context.Context) ([]*domain.FoodSuggestion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, quantity, calories, protein, carbs, fat FROM food_suggestions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing food suggestions: %w", err)
	}
	defer rows.Close()

	var out []*domain.FoodSuggestion
	for rows.Next() {
		var f domain.FoodSuggestion
		if err := rows.Scan(&f.Name, &f.Quantity, &f.Calories, &f.Protein, &f.Carbs, &f.Fat); err != nil {
			return nil, fmt.Errorf("scanning food suggestion row: %w", err)
		}
		out = append(out, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food suggestions: %w", err)
	}
	return out, nil
}

func (r *SQLiteFoodSuggestionRepo) Put(ctx context.Context, f *domain.FoodSuggestion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO food_suggestions (name, quantity, calories, protein, carbs, fat) VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET quantity = excluded.quantity, calories = excluded.calories,
		 protein = excluded.protein, carbs = excluded.carbs, fat = excluded.fat`,
		f.Name, f.Quantity, f.Calories, f.Protein, f.Carbs, f.Fat,
	)
	if err != nil {
		return fmt.Errorf("upserting food suggestion %q: %w", f.Name, err)
	}
	return nil
}

func (r *SQLiteFoodSuggestionRepo) InsertIfAbsent(ctx context.Context, f *domain.FoodSuggestion) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO food_suggestions (name, quantity, calories, protein, carbs, fat) VALUES (?, ?, ?, ?, ?, ?)`,
		f.Name, f.Quantity, f.Calories, f.Protein, f.Carbs, f.Fat,
	)
	if err != nil {
		return fmt.Errorf("inserting food suggestion %q: %w", f.Name, err)
	}
	return nil
}

func (r *SQLiteFoodSuggestionRepo) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_suggestions WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting food suggestion: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("food suggestion %q", name))
}
