package food

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	foods Repository
}

func NewService(foods Repository) *Service {
	return &Service{foods: foods}
}

func (s *Service) Create(ctx context.Context, f *CatalogFood) error {
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return fmt.Errorf("name is required")
	}
	for label, v := range map[string]*float64{
		"kcal": f.Kcal, "protein_g": f.ProteinG, "fat_g": f.FatG,
		"carb_g": f.CarbG, "fiber_g": f.FiberG,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%s must not be negative", label)
		}
	}
	return s.foods.Create(ctx, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*CatalogFood, error) {
	return s.foods.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*CatalogFood, int, error) {
	return s.foods.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.foods.Delete(ctx, id)
}
