package food

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f *CatalogFood) error
	GetByID(ctx context.Context, id uuid.UUID) (*CatalogFood, error)
	GetByName(ctx context.Context, name string) (*CatalogFood, error)
	List(ctx context.Context, search string, limit, offset int) ([]*CatalogFood, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
