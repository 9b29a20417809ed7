package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
)

// SQLiteRecipeRepo implements RecipeRepo using a SQLite database.
type SQLiteRecipeRepo struct {
	db db.DBTX
}

// NewSQLiteRecipeRepo creates a new SQLiteRecipeRepo.
func NewSQLiteRecipeRepo(conn db.DBTX) *SQLiteRecipeRepo {
	return &SQLiteRecipeRepo{db: conn}
}

const recipeColumns = `id, title, tags, time, ingredients, instructions`

func (r *SQLiteRecipeRepo) GetAll(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}
	defer rows.Close()

	var out []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipes: %w", err)
	}
	return out, nil
}

func (r *SQLiteRecipeRepo) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = ?`, id)
	rec, err := scanRecipe(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("recipe %d: %w", id, ErrNotFound)
	}
	return rec, err
}

func (r *SQLiteRecipeRepo) Put(ctx context.Context, rec *domain.Recipe) error {
	return r.write(ctx, `INSERT INTO recipes (`+recipeColumns+`) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, tags = excluded.tags, time = excluded.time,
		ingredients = excluded.ingredients, instructions = excluded.instructions`, rec)
}

func (r *SQLiteRecipeRepo) InsertIfAbsent(ctx context.Context, rec *domain.Recipe) error {
	return r.write(ctx, `INSERT OR IGNORE INTO recipes (`+recipeColumns+`) VALUES (?, ?, ?, ?, ?, ?)`, rec)
}

func (r *SQLiteRecipeRepo) write(ctx context.Context, query string, rec *domain.Recipe) error {
	tags, err := jsonText(nonNil(rec.Tags))
	if err != nil {
		return fmt.Errorf("encoding recipe tags: %w", err)
	}
	ingredients, err := jsonText(nonNil(rec.Ingredients))
	if err != nil {
		return fmt.Errorf("encoding recipe ingredients: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.Title, tags, rec.Time, ingredients, rec.Instructions,
	); err != nil {
		return fmt.Errorf("writing recipe %d: %w", rec.ID, err)
	}
	return nil
}

func (r *SQLiteRecipeRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM recipes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting recipe: %w", err)
	}
	return requireAffected(res, fmt.Sprintf("recipe %d", id))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(s rowScanner) (*domain.Recipe, error) {
	var rec domain.Recipe
	var tags, ingredients string
	if err := s.Scan(&rec.ID, &rec.Title, &tags, &rec.Time, &ingredients, &rec.Instructions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning recipe: %w", err)
	}
	var err error
	if rec.Tags, err = stringList(tags); err != nil {
		return nil, fmt.Errorf("decoding tags of recipe %d: %w", rec.ID, err)
	}
	if rec.Ingredients, err = stringList(ingredients); err != nil {
		return nil, fmt.Errorf("decoding ingredients of recipe %d: %w", rec.ID, err)
	}
	return &rec, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
