package topping

import (
	"context"

	"warung-pos/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Topping, error)
	GetByID(ctx context.Context, id string) (*domain.Topping, error)
	Create(ctx context.Context, t domain.Topping) (*domain.Topping, error)
	Update(ctx context.Context, t domain.Topping) (*domain.Topping, error)
	Delete(ctx context.Context, id string) error
}
