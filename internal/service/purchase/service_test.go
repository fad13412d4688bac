package purchase

import (
	"context"
	"testing"
	"time"

	"warung-pos/internal/domain"
	purchaserepo "warung-pos/internal/repository/purchase"
)

type stubRepo struct {
	purchases []domain.Purchase
	created   *domain.Purchase
}

func (s *stubRepo) List(context.Context, purchaserepo.ListFilter) ([]domain.Purchase, error) {
	return s.purchases, nil
}

func (s *stubRepo) GetByID(context.Context, string) (*domain.Purchase, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Purchase) (*domain.Purchase, error) {
	p.ID = "b-1"
	p.CreatedAt = time.Now()
	s.created = &p
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Purchase) (*domain.Purchase, error) {
	return &p, nil
}

func (s *stubRepo) Delete(context.Context, string) error { return nil }

func TestCreateSnapshotsRecorder(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	created, err := svc.Create(context.Background(), Recorder{ID: "u-1", Name: "Budi"}, Input{
		ItemName:   " Gula Aren ",
		Supplier:   "Pasar Induk",
		Quantity:   10,
		PriceCents: 150000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ItemName != "Gula Aren" {
		t.Fatalf("item name not trimmed: %q", created.ItemName)
	}
	if created.UserID != "u-1" || created.UserName != "Budi" {
		t.Fatalf("recorder not snapshotted: %+v", created)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{})
	recorder := Recorder{ID: "u-1", Name: "Budi"}

	if _, err := svc.Create(context.Background(), Recorder{}, Input{ItemName: "Gula", Quantity: 1}); err == nil {
		t.Fatal("missing recorder accepted")
	}
	if _, err := svc.Create(context.Background(), recorder, Input{Quantity: 1}); err == nil {
		t.Fatal("missing item name accepted")
	}
	if _, err := svc.Create(context.Background(), recorder, Input{ItemName: "Gula", Quantity: 0}); err == nil {
		t.Fatal("zero quantity accepted")
	}
	if _, err := svc.Create(context.Background(), recorder, Input{ItemName: "Gula", Quantity: 1, PriceCents: -1}); err == nil {
		t.Fatal("negative price accepted")
	}
}

func TestSummary(t *testing.T) {
	repo := &stubRepo{purchases: []domain.Purchase{
		{PriceCents: 150000, Quantity: 2},
		{PriceCents: 50000, Quantity: 1},
	}}
	svc := New(repo)

	got, err := svc.Summary(context.Background(), purchaserepo.ListFilter{})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.TotalCents != 350000 {
		t.Fatalf("total: want 350000, got %d", got.TotalCents)
	}
	if got.Transactions != 2 {
		t.Fatalf("transactions: want 2, got %d", got.Transactions)
	}
}
