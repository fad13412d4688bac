package purchase

import (
	"context"
	"errors"
	"fmt"

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

const purchaseColumns = `id::text, item_name, COALESCE(supplier, ''), quantity, price_cents, COALESCE(description, ''), user_id::text, user_name, created_at`

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Purchase, error) {
	q := `SELECT ` + purchaseColumns + ` FROM purchases`
	var conds []string
	var args []any
	if !f.From.IsZero() {
		args = append(args, f.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if f.UserID != "" {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	for i, c := range conds {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.ItemName, &p.Supplier, &p.Quantity, &p.PriceCents, &p.Description, &p.UserID, &p.UserName, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	var p domain.Purchase
	err := r.pool.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, id).
		Scan(&p.ID, &p.ItemName, &p.Supplier, &p.Quantity, &p.PriceCents, &p.Description, &p.UserID, &p.UserName, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Purchase) (*domain.Purchase, error) {
	const q = `
INSERT INTO purchases (item_name, supplier, quantity, price_cents, description, user_id, user_name)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6, $7)
RETURNING id::text, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ItemName, p.Supplier, p.Quantity, p.PriceCents, p.Description, p.UserID, p.UserName).
		Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Purchase) (*domain.Purchase, error) {
	const q = `
UPDATE purchases
SET item_name = $2, supplier = NULLIF($3, ''), quantity = $4, price_cents = $5, description = NULLIF($6, '')
WHERE id = $1
RETURNING user_id::text, user_name, created_at
`
	out := p
	err := r.pool.QueryRow(ctx, q, p.ID, p.ItemName, p.Supplier, p.Quantity, p.PriceCents, p.Description).
		Scan(&out.UserID, &out.UserName, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
