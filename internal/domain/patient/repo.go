package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

type Repository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	Update(ctx context.Context, id uuid.UUID, u Update) (*Patient, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error)
	UpdateDiet(ctx context.Context, id uuid.UUID, plan diet.Plan) error
}
