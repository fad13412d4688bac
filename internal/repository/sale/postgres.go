package sale

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"warung-pos/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Sale, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sale := domain.Sale{
		CashierID:       in.CashierID,
		CashierName:     in.CashierName,
		PaymentMethod:   in.PaymentMethod,
		TotalCents:      in.TotalCents,
		CashAmountCents: in.CashAmountCents,
	}
	err = tx.QueryRow(ctx, `
INSERT INTO sales (cashier_id, cashier_name, payment_method, total_cents, cash_amount_cents)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`, in.CashierID, in.CashierName, in.PaymentMethod, in.TotalCents, in.CashAmountCents).Scan(&sale.ID, &sale.CreatedAt)
	if err != nil {
		r.logger.Printf("sale repo: insert sale cashier=%s error=%v", in.CashierID, err)
		return nil, err
	}

	for _, item := range in.Items {
		saleItem := domain.SaleItem{
			Kind:           item.Kind,
			ItemID:         item.ItemID,
			ItemName:       item.ItemName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			Note:           item.Note,
		}
		err = tx.QueryRow(ctx, `
INSERT INTO sale_items (sale_id, item_kind, item_id, item_name, quantity, unit_price_cents, note)
VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
RETURNING id::text
`, sale.ID, item.Kind, item.ItemID, item.ItemName, item.Quantity, item.UnitPriceCents, item.Note).Scan(&saleItem.ID)
		if err != nil {
			return nil, err
		}

		if err := decrementStock(ctx, tx, item.Kind, item.ItemID, item.Quantity); err != nil {
			return nil, err
		}

		for _, addOn := range item.AddOns {
			if _, err := tx.Exec(ctx, `
INSERT INTO sale_item_toppings (sale_item_id, topping_id, topping_name, price_cents)
VALUES ($1, $2, $3, $4)
`, saleItem.ID, addOn.ToppingID, addOn.ToppingName, addOn.PriceCents); err != nil {
				return nil, err
			}
			// An add-on is consumed once per unit of the parent item, so it
			// decrements by the line quantity.
			if err := decrementStock(ctx, tx, domain.SaleItemTopping, addOn.ToppingID, item.Quantity); err != nil {
				return nil, err
			}
			saleItem.AddOns = append(saleItem.AddOns, addOn)
		}

		sale.Items = append(sale.Items, saleItem)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Printf("sale repo: commit cashier=%s error=%v", in.CashierID, err)
		return nil, err
	}
	r.logger.Printf("sale repo: created id=%s items=%d total=%d", sale.ID, len(sale.Items), sale.TotalCents)
	return &sale, nil
}

// decrementStock subtracts quantity from the item's stock, clamped at zero.
// Computing the new value in SQL keeps concurrent decrements from losing
// updates; a sale against a row that no longer exists aborts the whole
// transaction.
func decrementStock(ctx context.Context, tx pgx.Tx, kind domain.SaleItemKind, itemID string, quantity int) error {
	table := "products"
	if kind == domain.SaleItemTopping {
		table = "toppings"
	}
	cmd, err := tx.Exec(ctx, `UPDATE `+table+` SET stock = GREATEST(stock - $2, 0) WHERE id = $1`, itemID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", kind, itemID, domain.ErrNotFound)
	}
	return nil
}

const saleColumns = `id::text, cashier_id::text, cashier_name, payment_method, total_cents, cash_amount_cents, created_at`

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Sale, error) {
	q := `SELECT ` + saleColumns + ` FROM sales`
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
	if f.CashierID != "" {
		args = append(args, f.CashierID)
		conds = append(conds, fmt.Sprintf("cashier_id = $%d", len(args)))
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

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id)
	s, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	sales := []domain.Sale{*s}
	if err := r.attachItems(ctx, sales); err != nil {
		return nil, err
	}
	return &sales[0], nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	// sale_items and sale_item_toppings cascade.
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*domain.Sale, error) {
	var s domain.Sale
	var cashAmount *int64
	if err := row.Scan(&s.ID, &s.CashierID, &s.CashierName, &s.PaymentMethod, &s.TotalCents, &cashAmount, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.CashAmountCents = cashAmount
	return &s, nil
}

// attachItems loads items and their add-ons for the given sales in two
// queries and stitches them in.
func (r *postgresRepo) attachItems(ctx context.Context, sales []domain.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	saleIDs := make([]string, 0, len(sales))
	saleIdx := make(map[string]int, len(sales))
	for i, s := range sales {
		saleIDs = append(saleIDs, s.ID)
		saleIdx[s.ID] = i
	}

	const itemsQuery = `
SELECT id::text, sale_id::text, item_kind, item_id::text, item_name, quantity, unit_price_cents, COALESCE(note, '')
FROM sale_items
WHERE sale_id = ANY($1::uuid[])
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, saleIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	itemIDs := make([]string, 0, len(sales))
	type itemRef struct {
		sale int
		item int
	}
	itemIdx := make(map[string]itemRef)
	for rows.Next() {
		var item domain.SaleItem
		var saleID string
		if err := rows.Scan(&item.ID, &saleID, &item.Kind, &item.ItemID, &item.ItemName, &item.Quantity, &item.UnitPriceCents, &item.Note); err != nil {
			return err
		}
		i := saleIdx[saleID]
		sales[i].Items = append(sales[i].Items, item)
		itemIdx[item.ID] = itemRef{sale: i, item: len(sales[i].Items) - 1}
		itemIDs = append(itemIDs, item.ID)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(itemIDs) == 0 {
		return nil
	}

	const addOnsQuery = `
SELECT sale_item_id::text, topping_id::text, topping_name, price_cents
FROM sale_item_toppings
WHERE sale_item_id = ANY($1::uuid[])
ORDER BY topping_name ASC
`
	addOnRows, err := r.pool.Query(ctx, addOnsQuery, itemIDs)
	if err != nil {
		return err
	}
	defer addOnRows.Close()

	for addOnRows.Next() {
		var itemID string
		var a domain.SaleAddOn
		if err := addOnRows.Scan(&itemID, &a.ToppingID, &a.ToppingName, &a.PriceCents); err != nil {
			return err
		}
		ref := itemIdx[itemID]
		item := &sales[ref.sale].Items[ref.item]
		item.AddOns = append(item.AddOns, a)
	}
	return addOnRows.Err()
}
