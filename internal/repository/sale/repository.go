package sale

import (
	"context"
	"time"

	"warung-pos/internal/domain"
)

// CreateItem is one snapshot line to persist. Prices and names come from the
// cart, not from the live catalog.
type CreateItem struct {
	Kind           domain.SaleItemKind
	ItemID         string
	ItemName       string
	Quantity       int
	UnitPriceCents int64
	AddOns         []domain.SaleAddOn
	Note           string
}

// CreateInput carries everything needed for one atomic sale commit.
type CreateInput struct {
	CashierID       string
	CashierName     string
	PaymentMethod   domain.PaymentMethod
	TotalCents      int64
	CashAmountCents *int64
	Items           []CreateItem
}

// ListFilter narrows sale history queries. Zero values mean no filtering.
type ListFilter struct {
	From      time.Time
	To        time.Time
	CashierID string
}

type Repository interface {
	// Create persists the sale and decrements stock for every base item and
	// add-on in one transaction: either all writes land or none do.
	Create(ctx context.Context, in CreateInput) (*domain.Sale, error)
	List(ctx context.Context, f ListFilter) ([]domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}
