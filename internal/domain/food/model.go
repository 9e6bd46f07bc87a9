package food

import (
	"time"

	"github.com/google/uuid"
)

// CatalogFood maps to the food_items table, the searchable
// food-composition catalog dietitians pick from when building plans.
type CatalogFood struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Kcal      *float64  `db:"kcal" json:"kcal,omitempty"`
	ProteinG  *float64  `db:"protein_g" json:"protein_g,omitempty"`
	FatG      *float64  `db:"fat_g" json:"fat_g,omitempty"`
	CarbG     *float64  `db:"carb_g" json:"carb_g,omitempty"`
	FiberG    *float64  `db:"fiber_g" json:"fiber_g,omitempty"`
	Source    *string   `db:"source" json:"source,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
