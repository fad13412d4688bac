package purchase

import (
	"context"
	"time"

	"warung-pos/internal/domain"
)

// ListFilter narrows the purchase history. Zero values mean no filtering.
type ListFilter struct {
	From   time.Time
	To     time.Time
	UserID string
}

type Repository interface {
	List(ctx context.Context, f ListFilter) ([]domain.Purchase, error)
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	Create(ctx context.Context, p domain.Purchase) (*domain.Purchase, error)
	Update(ctx context.Context, p domain.Purchase) (*domain.Purchase, error)
	Delete(ctx context.Context, id string) error
}
