package importer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/nutriplan/nutriplan/internal/domain/food"
)

// Result summarizes a single import run.
type Result struct {
	Imported int
	Skipped  int
}

// Importer loads parsed catalog rows into the food repository. Rows whose
// name already exists in the catalog are skipped rather than duplicated.
type Importer struct {
	foods  food.Repository
	logger zerolog.Logger
}

func New(foods food.Repository, logger zerolog.Logger) *Importer {
	return &Importer{foods: foods, logger: logger}
}

func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	foods, err := ParseCatalogFile(path)
	if err != nil {
		return Result{}, err
	}
	return im.importAll(ctx, foods)
}

func (im *Importer) importAll(ctx context.Context, foods []*food.CatalogFood) (Result, error) {
	var res Result
	for _, f := range foods {
		_, err := im.foods.GetByName(ctx, f.Name)
		switch {
		case err == nil:
			res.Skipped++
			continue
		case !errors.Is(err, pgx.ErrNoRows):
			return res, fmt.Errorf("checking %q: %w", f.Name, err)
		}

		if err := im.foods.Create(ctx, f); err != nil {
			return res, fmt.Errorf("inserting %q: %w", f.Name, err)
		}
		res.Imported++
	}

	im.logger.Info().
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Msg("catalog import finished")
	return res, nil
}
