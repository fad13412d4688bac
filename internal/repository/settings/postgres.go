package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"warung-pos/internal/domain"
)

// The settings table holds at most one row, keyed by a fixed id.
const storeKey = "store"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.StoreSettings, error) {
	const q = `
SELECT store_name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(owner, ''), COALESCE(logo_url, ''), profit_percentage, updated_at
FROM settings
WHERE id = $1
`
	var s domain.StoreSettings
	err := r.pool.QueryRow(ctx, q, storeKey).Scan(
		&s.StoreName,
		&s.Address,
		&s.Phone,
		&s.Owner,
		&s.LogoURL,
		&s.ProfitPercentage,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Put(ctx context.Context, s domain.StoreSettings) (*domain.StoreSettings, error) {
	const q = `
INSERT INTO settings (id, store_name, address, phone, owner, logo_url, profit_percentage, updated_at)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, now())
ON CONFLICT (id) DO UPDATE
SET store_name = EXCLUDED.store_name,
    address = EXCLUDED.address,
    phone = EXCLUDED.phone,
    owner = EXCLUDED.owner,
    logo_url = EXCLUDED.logo_url,
    profit_percentage = EXCLUDED.profit_percentage,
    updated_at = now()
RETURNING updated_at
`
	out := s
	err := r.pool.QueryRow(ctx, q, storeKey, s.StoreName, s.Address, s.Phone, s.Owner, s.LogoURL, s.ProfitPercentage).
		Scan(&out.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) FactoryReset(ctx context.Context) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Child tables first to satisfy foreign keys.
	tables := []string{
		"sale_item_toppings",
		"sale_items",
		"sales",
		"purchases",
		"products",
		"toppings",
		"categories",
		"users",
		"settings",
	}
	for _, table := range tables {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
