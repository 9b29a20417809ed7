package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/courtside/internal/catalog"
	"github.com/alexanderramin/courtside/internal/db"
	"github.com/alexanderramin/courtside/internal/repository"
	"github.com/alexanderramin/courtside/internal/schedule"
)

type seedService struct {
	uow       db.UnitOfWork
	catalog   *catalog.Catalog
	overrides schedule.Table
	version   int
	observer  UseCaseObserver
}

// NewSeedService seeds cat and the override table. A nil catalog means the
// embedded one; a nil table means schedule.Default().
func NewSeedService(uow db.UnitOfWork, cat *catalog.Catalog, overrides schedule.Table, observers ...UseCaseObserver) SeedService {
	if cat == nil {
		cat = catalog.MustLoad()
	}
	if overrides == nil {
		overrides = schedule.Default()
	}
	return &seedService{
		uow:       uow,
		catalog:   cat,
		overrides: overrides,
		version:   catalog.SeedVersion,
		observer:  combineObservers(observers),
	}
}

func (s *seedService) Seed(ctx context.Context) (applied bool, err error) {
	fields := map[string]any{"version": s.version}
	defer finish(ctx, s.observer, "seed", time.Now(), fields, &err)

	applied, err = db.Seed(ctx, s.uow, s.version, s.write)
	fields["applied"] = applied
	return applied, err
}

// write only inserts missing rows, so records the user edited or deleted
// before a version bump keep their current state unless absent.
func (s *seedService) write(ctx context.Context, tx db.DBTX) error {
	recipes := repository.NewSQLiteRecipeRepo(tx)
	for i := range s.catalog.Recipes {
		if err := recipes.InsertIfAbsent(ctx, &s.catalog.Recipes[i]); err != nil {
			return err
		}
	}

	exercises := repository.NewSQLiteExerciseRepo(tx)
	for i := range s.catalog.Exercises {
		if err := exercises.InsertIfAbsent(ctx, &s.catalog.Exercises[i]); err != nil {
			return err
		}
	}

	foods := repository.NewSQLiteFoodSuggestionRepo(tx)
	for i := range s.catalog.Foods {
		if err := foods.InsertIfAbsent(ctx, &s.catalog.Foods[i]); err != nil {
			return err
		}
	}

	overrides := repository.NewSQLiteOverrideRepo(tx)
	for _, e := range s.overrides.Entries() {
		e := e
		if err := overrides.InsertIfAbsent(ctx, &e); err != nil {
			return err
		}
	}

	settings := repository.NewSQLiteSettingsRepo(tx)
	for key, value := range catalog.DefaultSettings() {
		if _, err := settings.PutIfAbsent(ctx, key, value); err != nil {
			return fmt.Errorf("default setting %q: %w", key, err)
		}
	}
	return nil
}
