package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/courtside/internal/catalog"
	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/domain"
	"github.com/alexanderramin/courtside/internal/repository"
)

type catalogService struct {
	recipes   repository.RecipeRepo
	exercises repository.ExerciseRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewCatalogService(
	recipes repository.RecipeRepo,
	exercises repository.ExerciseRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) CatalogService {
	return &catalogService{
		recipes:   recipes,
		exercises: exercises,
		uow:       uow,
		observer:  combineObservers(observers),
	}
}

func (s *catalogService) Recipes(ctx context.Context) ([]*domain.Recipe, error) {
	return s.recipes.GetAll(ctx)
}

func (s *catalogService) Recipe(ctx context.Context, id int64) (*domain.Recipe, error) {
	return s.recipes.GetByID(ctx, id)
}

func (s *catalogService) SaveRecipe(ctx context.Context, r *domain.Recipe) (err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "recipe-save", time.Now(), fields, &err)

	if r == nil || strings.TrimSpace(r.Title) == "" {
		return invalidf("recipe title is required")
	}
	if r.ID < 0 {
		return invalidf("recipe id must not be negative")
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteRecipeRepo(tx)
		if r.ID == 0 {
			all, err := repo.GetAll(ctx)
			if err != nil {
				return err
			}
			r.ID = nextID(len(all), func(i int) int64 { return all[i].ID })
		}
		fields["id"] = r.ID
		return repo.Put(ctx, r)
	})
}

func (s *catalogService) DeleteRecipe(ctx context.Context, id int64) (err error) {
	defer finish(ctx, s.observer, "recipe-delete", time.Now(), map[string]any{"id": id}, &err)
	return s.recipes.Delete(ctx, id)
}

func (s *catalogService) Exercises(ctx context.Context) ([]*domain.Exercise, error) {
	return s.exercises.GetAll(ctx)
}

func (s *catalogService) SaveExercise(ctx context.Context, e *domain.Exercise) (err error) {
	fields := map[string]any{}
	defer finish(ctx, s.observer, "exercise-save", time.Now(), fields, &err)

	if e == nil || strings.TrimSpace(e.Title) == "" {
		return invalidf("exercise title is required")
	}
	if e.ID < 0 {
		return invalidf("exercise id must not be negative")
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteExerciseRepo(tx)
		if e.ID == 0 {
			all, err := repo.GetAll(ctx)
			if err != nil {
				return err
			}
			e.ID = nextID(len(all), func(i int) int64 { return all[i].ID })
		}
		fields["id"] = e.ID
		return repo.Put(ctx, e)
	})
}

func (s *catalogService) DeleteExercise(ctx context.Context, id int64) (err error) {
	defer finish(ctx, s.observer, "exercise-delete", time.Now(), map[string]any{"id": id}, &err)
	return s.exercises.Delete(ctx, id)
}

func (s *catalogService) StandardPantry() []string {
	out := make([]string, len(catalog.StandardPantry))
	copy(out, catalog.StandardPantry)
	return out
}

func nextID(n int, id func(i int) int64) int64 {
	var max int64
	for i := 0; i < n; i++ {
		if v := id(i); v > max {
			max = v
		}
	}
	return max + 1
}
