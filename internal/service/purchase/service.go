package purchase

import (
	"context"
	"errors"
	"strings"

	"warung-pos/internal/domain"
	purchaserepo "warung-pos/internal/repository/purchase"
)

// Recorder identifies the user entering a purchase; id and name are
// snapshotted onto the record.
type Recorder struct {
	ID   string
	Name string
}

type Service struct {
	repo purchaserepo.Repository
}

func New(repo purchaserepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	ItemName    string `json:"itemName"`
	Supplier    string `json:"supplier"`
	Quantity    int    `json:"quantity"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.ItemName) == "" {
		return errors.New("item name required")
	}
	if in.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

func (s *Service) List(ctx context.Context, f purchaserepo.ListFilter) ([]domain.Purchase, error) {
	return s.repo.List(ctx, f)
}

// SpendingSummary totals a filtered slice of the purchase history.
type SpendingSummary struct {
	TotalCents   int64 `json:"totalCents"`
	Transactions int   `json:"transactions"`
}

func (s *Service) Summary(ctx context.Context, f purchaserepo.ListFilter) (*SpendingSummary, error) {
	purchases, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	var out SpendingSummary
	for _, p := range purchases {
		out.TotalCents += p.PriceCents * int64(p.Quantity)
		out.Transactions++
	}
	return &out, nil
}

func (s *Service) Create(ctx context.Context, recorder Recorder, in Input) (*domain.Purchase, error) {
	if recorder.ID == "" {
		return nil, errors.New("recording user required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Purchase{
		ItemName:    strings.TrimSpace(in.ItemName),
		Supplier:    in.Supplier,
		Quantity:    in.Quantity,
		PriceCents:  in.PriceCents,
		Description: in.Description,
		UserID:      recorder.ID,
		UserName:    recorder.Name,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Purchase, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Purchase{
		ID:          id,
		ItemName:    strings.TrimSpace(in.ItemName),
		Supplier:    in.Supplier,
		Quantity:    in.Quantity,
		PriceCents:  in.PriceCents,
		Description: in.Description,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
