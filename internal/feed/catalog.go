package feed

import (
	"context"
	"log"
	"time"

	"warung-pos/internal/domain"
)

// CatalogSnapshot is what cashier screens watch: the full sellable catalog.
type CatalogSnapshot struct {
	Products   []domain.Product  `json:"products"`
	Toppings   []domain.Topping  `json:"toppings"`
	Categories []domain.Category `json:"categories"`
}

type catalogSource interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListToppings(ctx context.Context) ([]domain.Topping, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// NewCatalogWatcher builds a watcher over the whole catalog.
func NewCatalogWatcher(source catalogSource, interval time.Duration, logger *log.Logger) *Watcher[CatalogSnapshot] {
	load := func(ctx context.Context) (CatalogSnapshot, error) {
		var snap CatalogSnapshot
		var err error
		if snap.Products, err = source.ListProducts(ctx); err != nil {
			return CatalogSnapshot{}, err
		}
		if snap.Toppings, err = source.ListToppings(ctx); err != nil {
			return CatalogSnapshot{}, err
		}
		if snap.Categories, err = source.ListCategories(ctx); err != nil {
			return CatalogSnapshot{}, err
		}
		return snap, nil
	}
	return New(load, interval, logger)
}
