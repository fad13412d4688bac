package settings

import (
	"context"

	"warung-pos/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	Put(ctx context.Context, s domain.StoreSettings) (*domain.StoreSettings, error)
	// FactoryReset wipes sales, purchases, catalog, users and the settings
	// row in one transaction.
	FactoryReset(ctx context.Context) error
}
