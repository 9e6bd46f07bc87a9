package patient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	p.Nome = strings.TrimSpace(p.Nome)
	p.Cognome = strings.TrimSpace(p.Cognome)
	if p.Nome == "" {
		return fmt.Errorf("nome is required")
	}
	if p.Cognome == "" {
		return fmt.Errorf("cognome is required")
	}
	if p.Eta != nil && (*p.Eta < 0 || *p.Eta > 150) {
		return fmt.Errorf("eta out of range")
	}
	// A new patient always starts with a zeroed plan, never whatever the
	// request body carried.
	p.Dieta = diet.EmptyPlan()
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, u Update) (*Patient, error) {
	if u.Empty() {
		return nil, fmt.Errorf("no fields to update")
	}
	if u.Nome != nil && strings.TrimSpace(*u.Nome) == "" {
		return nil, fmt.Errorf("nome must not be blank")
	}
	if u.Cognome != nil && strings.TrimSpace(*u.Cognome) == "" {
		return nil, fmt.Errorf("cognome must not be blank")
	}
	if u.Eta != nil && (*u.Eta < 0 || *u.Eta > 150) {
		return nil, fmt.Errorf("eta out of range")
	}
	return s.patients.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	return s.patients.List(ctx, strings.TrimSpace(search), limit, offset)
}

func (s *Service) GetDiet(ctx context.Context, id uuid.UUID) (diet.Plan, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return diet.Plan{}, err
	}
	return p.Dieta, nil
}

// ReplaceDiet stores a whole new plan, recomputing every meal and daily
// total before the write so client-supplied totals are never trusted.
func (s *Service) ReplaceDiet(ctx context.Context, id uuid.UUID, plan diet.Plan) (diet.Plan, error) {
	recalced := plan.Recalculated()
	if err := s.patients.UpdateDiet(ctx, id, recalced); err != nil {
		return diet.Plan{}, err
	}
	return recalced, nil
}

// AppendFood adds one food to a meal and persists the recomputed plan.
func (s *Service) AppendFood(ctx context.Context, id uuid.UUID, mealKey string, food diet.FoodItem) (diet.Plan, error) {
	if !diet.ValidMealKey(mealKey) {
		return diet.Plan{}, fmt.Errorf("invalid meal key: %s", mealKey)
	}
	if strings.TrimSpace(food.Nome) == "" {
		return diet.Plan{}, fmt.Errorf("nome is required")
	}
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return diet.Plan{}, err
	}
	updated := p.Dieta.AppendFood(mealKey, food)
	if err := s.patients.UpdateDiet(ctx, id, updated); err != nil {
		return diet.Plan{}, err
	}
	return updated, nil
}
