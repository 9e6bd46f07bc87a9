package food

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const foodCols = `id, name, kcal, protein_g, fat_g, carb_g, fiber_g, source, created_at`

func (r *repoPG) scan(row pgx.Row) (*CatalogFood, error) {
	var f CatalogFood
	err := row.Scan(&f.ID, &f.Name, &f.Kcal, &f.ProteinG, &f.FatG,
		&f.CarbG, &f.FiberG, &f.Source, &f.CreatedAt)
	return &f, err
}

func (r *repoPG) Create(ctx context.Context, f *CatalogFood) error {
	f.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO food_items (id, name, kcal, protein_g, fat_g, carb_g, fiber_g, source)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at`,
		f.ID, f.Name, f.Kcal, f.ProteinG, f.FatG, f.CarbG, f.FiberG, f.Source).
		Scan(&f.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*CatalogFood, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+foodCols+` FROM food_items WHERE id = $1`, id))
}

func (r *repoPG) GetByName(ctx context.Context, name string) (*CatalogFood, error) {
	return r.scan(r.pool.QueryRow(ctx, `SELECT `+foodCols+` FROM food_items WHERE LOWER(name) = LOWER($1)`, name))
}

func (r *repoPG) List(ctx context.Context, search string, limit, offset int) ([]*CatalogFood, int, error) {
	where := ``
	var args []interface{}
	idx := 1
	if search != "" {
		where = fmt.Sprintf(` WHERE name ILIKE $%d`, idx)
		args = append(args, "%"+search+"%")
		idx++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM food_items`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + foodCols + ` FROM food_items` + where +
		fmt.Sprintf(` ORDER BY name LIMIT $%d OFFSET $%d`, idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*CatalogFood
	for rows.Next() {
		f, err := r.scan(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, f)
	}
	return items, total, nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
