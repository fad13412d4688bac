package sale

import (
	"context"
	"errors"
	"testing"

	"warung-pos/internal/cart"
	"warung-pos/internal/domain"
	salerepo "warung-pos/internal/repository/sale"
)

type stubRepo struct {
	createCalls int
	lastInput   salerepo.CreateInput
	createErr   error
}

func (s *stubRepo) Create(_ context.Context, in salerepo.CreateInput) (*domain.Sale, error) {
	s.createCalls++
	s.lastInput = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	sale := &domain.Sale{
		ID:              "s-1",
		CashierID:       in.CashierID,
		CashierName:     in.CashierName,
		TotalCents:      in.TotalCents,
		PaymentMethod:   in.PaymentMethod,
		CashAmountCents: in.CashAmountCents,
	}
	for i, item := range in.Items {
		sale.Items = append(sale.Items, domain.SaleItem{
			ID:             string(rune('a' + i)),
			Kind:           item.Kind,
			ItemID:         item.ItemID,
			ItemName:       item.ItemName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			AddOns:         item.AddOns,
			Note:           item.Note,
		})
	}
	return sale, nil
}

func (s *stubRepo) List(context.Context, salerepo.ListFilter) ([]domain.Sale, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(context.Context, string) (*domain.Sale, error) { return nil, nil }
func (s *stubRepo) Delete(context.Context, string) error                  { return nil }

func int64p(v int64) *int64 { return &v }

var budi = Cashier{ID: "u-1", Name: "Budi"}

func demoCart() cart.Cart {
	kopi := cart.BaseItem{Kind: cart.BaseProduct, ID: "p-1", Name: "Kopi Susu", PriceCents: 18000}
	boba := cart.AddOn{ToppingID: "t-1", Name: "Boba", PriceCents: 3000}
	c := cart.MergeOrAdd(nil, kopi, []cart.AddOn{boba}, "")
	c = cart.MergeOrAdd(c, kopi, []cart.AddOn{boba}, "")
	return c
}

func TestCommitHappyPathCash(t *testing.T) {
	repo := &stubRepo{}
	svc := Service{repo: repo}

	c := demoCart()
	total := cart.TotalCents(c) // 2 x (18000 + 3000) = 42000
	sale, err := svc.Commit(context.Background(), budi, c, domain.PaymentCash, total, int64p(50000))
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	if repo.createCalls != 1 {
		t.Fatalf("expected exactly one create call, got %d", repo.createCalls)
	}
	if sale.TotalCents != 42000 {
		t.Fatalf("total: want 42000, got %d", sale.TotalCents)
	}
	if got := sale.ChangeDueCents(); got != 8000 {
		t.Fatalf("change due: want 8000, got %d", got)
	}

	in := repo.lastInput
	if in.CashierID != budi.ID || in.CashierName != budi.Name {
		t.Fatalf("cashier not snapshotted: %+v", in)
	}
	if len(in.Items) != 1 {
		t.Fatalf("expected merged single item, got %d", len(in.Items))
	}
	item := in.Items[0]
	if item.Quantity != 2 || item.UnitPriceCents != 18000 {
		t.Fatalf("item snapshot wrong: %+v", item)
	}
	if len(item.AddOns) != 1 || item.AddOns[0].PriceCents != 3000 {
		t.Fatalf("add-on snapshot wrong: %+v", item.AddOns)
	}
}

func TestCommitNonCashRejectsCashAmount(t *testing.T) {
	repo := &stubRepo{}
	svc := Service{repo: repo}

	c := demoCart()
	_, err := svc.Commit(context.Background(), budi, c, domain.PaymentQRIS, cart.TotalCents(c), int64p(50000))
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("expected ErrInvalidPayment, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("repo was called %d times on rejected commit", repo.createCalls)
	}
}

func TestCommitNonCashHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := Service{repo: repo}

	c := demoCart()
	sale, err := svc.Commit(context.Background(), budi, c, domain.PaymentQRIS, cart.TotalCents(c), nil)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	if sale.CashAmountCents != nil {
		t.Fatalf("non-cash sale must not record a cash amount")
	}
	if got := sale.ChangeDueCents(); got != 0 {
		t.Fatalf("non-cash change due: want 0, got %d", got)
	}
}

func TestCommitValidationRejections(t *testing.T) {
	c := demoCart()
	total := cart.TotalCents(c)

	tests := []struct {
		name    string
		cashier Cashier
		lines   cart.Cart
		method  domain.PaymentMethod
		total   int64
		cash    *int64
		wantErr error
	}{
		{"no cashier", Cashier{}, c, domain.PaymentCash, total, int64p(total), ErrNotAuthenticated},
		{"empty cart", budi, nil, domain.PaymentCash, 0, int64p(0), ErrEmptyCart},
		{"unknown method", budi, c, "cheque", total, nil, ErrInvalidPayment},
		{"total mismatch", budi, c, domain.PaymentCash, total + 1, int64p(total + 1), ErrTotalMismatch},
		{"cash missing amount", budi, c, domain.PaymentCash, total, nil, ErrInvalidPayment},
		{"cash under total", budi, c, domain.PaymentCash, total, int64p(total - 1), ErrInsufficientPayment},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := Service{repo: repo}
			_, err := svc.Commit(context.Background(), tc.cashier, tc.lines, tc.method, tc.total, tc.cash)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("want %v, got %v", tc.wantErr, err)
			}
			if repo.createCalls != 0 {
				t.Fatalf("rejected commit must not touch the store, got %d calls", repo.createCalls)
			}
		})
	}
}

func TestCommitExactCashIsAccepted(t *testing.T) {
	repo := &stubRepo{}
	svc := Service{repo: repo}

	c := demoCart()
	total := cart.TotalCents(c)
	sale, err := svc.Commit(context.Background(), budi, c, domain.PaymentCash, total, int64p(total))
	if err != nil {
		t.Fatalf("exact cash must be accepted: %v", err)
	}
	if got := sale.ChangeDueCents(); got != 0 {
		t.Fatalf("change due: want 0, got %d", got)
	}
}

func TestCommitWrapsStoreFailure(t *testing.T) {
	repo := &stubRepo{createErr: errors.New("connection reset")}
	svc := Service{repo: repo}

	c := demoCart()
	_, err := svc.Commit(context.Background(), budi, c, domain.PaymentQRIS, cart.TotalCents(c), nil)
	if !errors.Is(err, ErrCommitFailed) {
		t.Fatalf("expected ErrCommitFailed, got %v", err)
	}
}

func TestCommitStandaloneToppingLine(t *testing.T) {
	repo := &stubRepo{}
	svc := Service{repo: repo}

	boba := cart.BaseItem{Kind: cart.BaseTopping, ID: "t-1", Name: "Boba", PriceCents: 3000}
	c := cart.MergeOrAdd(nil, boba, nil, "")
	c = cart.SetQuantity(c, c[0].ID, 3)

	_, err := svc.Commit(context.Background(), budi, c, domain.PaymentQRIS, 9000, nil)
	if err != nil {
		t.Fatalf("commit failed: %v", err)
	}
	item := repo.lastInput.Items[0]
	if item.Kind != domain.SaleItemTopping {
		t.Fatalf("expected topping kind, got %q", item.Kind)
	}
	if item.Quantity != 3 || item.UnitPriceCents != 3000 {
		t.Fatalf("topping snapshot wrong: %+v", item)
	}
}
