package patient

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nutriplan/nutriplan/internal/domain/diet"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, nome, cognome, eta, email, telefono, note, dieta, created_at, updated_at`

func (r *repoPG) scan(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Nome, &p.Cognome, &p.Eta, &p.Email,
		&p.Telefono, &p.Note, &p.Dieta, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, nome, cognome, eta, email, telefono, note, dieta)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at, updated_at`,
		p.ID, p.Nome, p.Cognome, p.Eta, p.Email, p.Telefono, p.Note, p.Dieta).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *repoPG) Update(ctx context.Context, id uuid.UUID, u Update) (*Patient, error) {
	set := ``
	var args []interface{}
	args = append(args, id)
	idx := 2

	add := func(col string, v interface{}) {
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s=$%d", col, idx)
		args = append(args, v)
		idx++
	}
	if u.Nome != nil {
		add("nome", *u.Nome)
	}
	if u.Cognome != nil {
		add("cognome", *u.Cognome)
	}
	if u.Eta != nil {
		add("eta", *u.Eta)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Telefono != nil {
		add("telefono", *u.Telefono)
	}
	if u.Note != nil {
		add("note", *u.Note)
	}
	if set == "" {
		return nil, fmt.Errorf("no fields to update")
	}

	return r.scan(r.pool.QueryRow(ctx, `
		UPDATE patients SET `+set+`, updated_at=NOW()
		WHERE id = $1
		RETURNING `+patientCols, args...))
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, search string, limit, offset int) ([]*Patient, int, error) {
	where := ``
	var args []interface{}
	idx := 1
	if search != "" {
		where = fmt.Sprintf(` WHERE nome ILIKE $%d OR cognome ILIKE $%d OR email ILIKE $%d`, idx, idx, idx)
		args = append(args, "%"+search+"%")
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patients`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + patientCols + ` FROM patients` + where +
		fmt.Sprintf(` ORDER BY cognome, nome LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *repoPG) UpdateDiet(ctx context.Context, id uuid.UUID, plan diet.Plan) error {
	tag, err := r.pool.Exec(ctx, `UPDATE patients SET dieta=$2, updated_at=NOW() WHERE id = $1`, id, plan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
