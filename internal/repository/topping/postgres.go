package topping

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"warung-pos/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Topping, error) {
	const q = `
SELECT id::text, name, stock, price_cents, COALESCE(image_url, ''), COALESCE(description, ''), created_at
FROM toppings
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Topping
	for rows.Next() {
		var t domain.Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Stock, &t.PriceCents, &t.ImageURL, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Topping, error) {
	const q = `
SELECT id::text, name, stock, price_cents, COALESCE(image_url, ''), COALESCE(description, ''), created_at
FROM toppings
WHERE id = $1
`
	var t domain.Topping
	err := r.pool.QueryRow(ctx, q, id).Scan(&t.ID, &t.Name, &t.Stock, &t.PriceCents, &t.ImageURL, &t.Description, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Create(ctx context.Context, t domain.Topping) (*domain.Topping, error) {
	const q = `
INSERT INTO toppings (name, stock, price_cents, image_url, description)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''))
RETURNING id::text, created_at
`
	out := t
	if err := r.pool.QueryRow(ctx, q, t.Name, t.Stock, t.PriceCents, t.ImageURL, t.Description).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, t domain.Topping) (*domain.Topping, error) {
	const q = `
UPDATE toppings
SET name = $2, stock = $3, price_cents = $4, image_url = NULLIF($5, ''), description = NULLIF($6, '')
WHERE id = $1
RETURNING created_at
`
	out := t
	if err := r.pool.QueryRow(ctx, q, t.ID, t.Name, t.Stock, t.PriceCents, t.ImageURL, t.Description).Scan(&out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM toppings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
