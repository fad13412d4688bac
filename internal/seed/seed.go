package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Category    string
	Stock       int
	PriceCents  int64
	Description string
}

type toppingSeed struct {
	Name       string
	Stock      int
	PriceCents int64
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT / existence checks.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureSettings(ctx, pool); err != nil {
		return fmt.Errorf("ensure settings: %w", err)
	}
	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	categoryID, err := ensureCategory(ctx, pool, "Minuman", "Minuman dingin dan panas")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}

	products := []productSeed{
		{Name: "Kopi Susu", Stock: 50, PriceCents: 1800000, Description: "Kopi susu gula aren"},
		{Name: "Es Teh", Stock: 80, PriceCents: 800000, Description: "Teh manis dingin"},
		{Name: "Matcha Latte", Stock: 30, PriceCents: 2200000},
	}
	for _, p := range products {
		if err := ensureProduct(ctx, pool, categoryID, p); err != nil {
			return fmt.Errorf("ensure product %s: %w", p.Name, err)
		}
	}

	toppings := []toppingSeed{
		{Name: "Boba", Stock: 100, PriceCents: 300000},
		{Name: "Keju", Stock: 60, PriceCents: 500000},
		{Name: "Cincau", Stock: 70, PriceCents: 300000},
	}
	for _, t := range toppings {
		if err := ensureTopping(ctx, pool, t); err != nil {
			return fmt.Errorf("ensure topping %s: %w", t.Name, err)
		}
	}

	return nil
}

func ensureSettings(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO settings (id, store_name, address, phone, owner, profit_percentage)
VALUES ('store', 'Warung Demo', 'Jalan Kenangan No. 1', '081234567890', 'Pemilik Toko', 30)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q)
	return err
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO users (name, username, password_hash, role)
VALUES ('Admin', 'admin', $1, 'admin')
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, string(hashed))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name, description string) (string, error) {
	var id string
	err := pool.QueryRow(ctx, `SELECT id::text FROM categories WHERE name = $1`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	err = pool.QueryRow(ctx, `
INSERT INTO categories (name, description)
VALUES ($1, $2)
RETURNING id::text
`, name, description).Scan(&id)
	return id, err
}

func ensureProduct(ctx context.Context, pool *pgxpool.Pool, categoryID string, p productSeed) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE name = $1)`, p.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err := pool.Exec(ctx, `
INSERT INTO products (name, category_id, stock, price_cents, description)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
`, p.Name, categoryID, p.Stock, p.PriceCents, p.Description)
	return err
}

func ensureTopping(ctx context.Context, pool *pgxpool.Pool, t toppingSeed) error {
	var exists bool
	if err := pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM toppings WHERE name = $1)`, t.Name).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err := pool.Exec(ctx, `
INSERT INTO toppings (name, stock, price_cents)
VALUES ($1, $2, $3)
`, t.Name, t.Stock, t.PriceCents)
	return err
}
