package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

// Patient maps to the patients table. Dieta lives in a JSONB column and
// always round-trips as a whole plan.
type Patient struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Nome      string    `db:"nome" json:"nome"`
	Cognome   string    `db:"cognome" json:"cognome"`
	Eta       *int      `db:"eta" json:"eta,omitempty"`
	Email     *string   `db:"email" json:"email,omitempty"`
	Telefono  *string   `db:"telefono" json:"telefono,omitempty"`
	Note      *string   `db:"note" json:"note,omitempty"`
	Dieta     diet.Plan `db:"dieta" json:"dieta"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Update carries the fields of a partial patient update; nil means
// leave the column untouched.
type Update struct {
	Nome     *string `json:"nome,omitempty"`
	Cognome  *string `json:"cognome,omitempty"`
	Eta      *int    `json:"eta,omitempty"`
	Email    *string `json:"email,omitempty"`
	Telefono *string `json:"telefono,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// Empty reports whether the update would change nothing.
func (u Update) Empty() bool {
	return u.Nome == nil && u.Cognome == nil && u.Eta == nil &&
		u.Email == nil && u.Telefono == nil && u.Note == nil
}
