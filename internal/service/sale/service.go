// Package sale implements the checkout commit: turning a priced cart plus a
// payment method into exactly one durable sale and a consistent set of stock
// decrements, or failing with no effect at all.
package sale

import (
	"context"
	"errors"
	"fmt"

	"warung-pos/internal/cart"
	"warung-pos/internal/domain"
	salerepo "warung-pos/internal/repository/sale"
)

var (
	// ErrNotAuthenticated means no acting cashier; nothing was written.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrEmptyCart rejects a checkout with no lines; nothing was written.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPayment rejects an unknown payment method or a cash amount
	// supplied for a non-cash method; nothing was written.
	ErrInvalidPayment = errors.New("invalid payment")
	// ErrInsufficientPayment means cash tendered is below the total; nothing
	// was written.
	ErrInsufficientPayment = errors.New("insufficient cash tendered")
	// ErrTotalMismatch means the caller-supplied total disagrees with the
	// cart; nothing was written.
	ErrTotalMismatch = errors.New("total does not match cart")
	// ErrCommitFailed wraps a store-level failure of the atomic batch. No
	// partial writes are visible; the caller keeps the cart and may retry.
	ErrCommitFailed = errors.New("sale commit failed")
)

// Cashier identifies the authenticated user performing the checkout.
type Cashier struct {
	ID   string
	Name string
}

type saleRepo interface {
	Create(ctx context.Context, in salerepo.CreateInput) (*domain.Sale, error)
	List(ctx context.Context, f salerepo.ListFilter) ([]domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo saleRepo
}

func New(repo salerepo.Repository) *Service {
	return &Service{repo: repo}
}

// Commit validates the checkout and persists it atomically. Validation
// happens entirely before any database interaction: a rejected commit has
// performed zero writes.
//
// totalCents is supplied by the caller for receipt parity but is re-derived
// from the cart and rejected on mismatch rather than trusted.
func (s *Service) Commit(ctx context.Context, cashier Cashier, lines cart.Cart, method domain.PaymentMethod, totalCents int64, cashCents *int64) (*domain.Sale, error) {
	if cashier.ID == "" {
		return nil, ErrNotAuthenticated
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !domain.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidPayment, method)
	}
	if computed := cart.TotalCents(lines); computed != totalCents {
		return nil, fmt.Errorf("%w: got %d, cart sums to %d", ErrTotalMismatch, totalCents, computed)
	}
	if method == domain.PaymentCash {
		if cashCents == nil {
			return nil, fmt.Errorf("%w: cash amount required", ErrInvalidPayment)
		}
		if *cashCents < totalCents {
			return nil, ErrInsufficientPayment
		}
	} else if cashCents != nil {
		return nil, fmt.Errorf("%w: cash amount only valid for cash payments", ErrInvalidPayment)
	}

	in := salerepo.CreateInput{
		CashierID:       cashier.ID,
		CashierName:     cashier.Name,
		PaymentMethod:   method,
		TotalCents:      totalCents,
		CashAmountCents: cashCents,
		Items:           snapshotItems(lines),
	}

	sale, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommitFailed, err)
	}
	return sale, nil
}

// snapshotItems freezes cart lines into persistable sale items, copying the
// cart's price and name snapshots. The live catalog is never consulted.
func snapshotItems(lines cart.Cart) []salerepo.CreateItem {
	items := make([]salerepo.CreateItem, 0, len(lines))
	for _, line := range lines {
		item := salerepo.CreateItem{
			Kind:           domain.SaleItemProduct,
			ItemID:         line.Base.ID,
			ItemName:       line.Base.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.Base.PriceCents,
			Note:           line.Note,
		}
		if line.Base.Kind == cart.BaseTopping {
			item.Kind = domain.SaleItemTopping
		}
		for _, a := range line.AddOns {
			item.AddOns = append(item.AddOns, domain.SaleAddOn{
				ToppingID:   a.ToppingID,
				ToppingName: a.Name,
				PriceCents:  a.PriceCents,
			})
		}
		items = append(items, item)
	}
	return items
}

// List returns sale history, optionally filtered by date range and cashier.
func (s *Service) List(ctx context.Context, f salerepo.ListFilter) ([]domain.Sale, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a sale record. Administrative action; stock is not
// restored.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
