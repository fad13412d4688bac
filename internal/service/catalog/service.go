// Package catalog groups the product, topping and category management flows
// behind one service. It is the sole writer of catalog fields; stock is also
// decremented by the sale commit path.
package catalog

import (
	"context"
	"errors"
	"strings"

	"warung-pos/internal/domain"
	categoryrepo "warung-pos/internal/repository/category"
	productrepo "warung-pos/internal/repository/product"
	toppingrepo "warung-pos/internal/repository/topping"
)

type Service struct {
	products   productrepo.Repository
	toppings   toppingrepo.Repository
	categories categoryrepo.Repository
}

func New(products productrepo.Repository, toppings toppingrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{products: products, toppings: toppings, categories: categories}
}

// --- Products ---

type ProductInput struct {
	Name        string `json:"name"`
	CategoryID  string `json:"categoryId"`
	Stock       int    `json:"stock"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if strings.TrimSpace(in.CategoryID) == "" {
		return errors.New("categoryId required")
	}
	if in.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.products.Create(ctx, domain.Product{
		Name:        strings.TrimSpace(in.Name),
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	})
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.products.Update(ctx, domain.Product{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		CategoryID:  in.CategoryID,
		Stock:       in.Stock,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	})
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// --- Toppings ---

type ToppingInput struct {
	Name        string `json:"name"`
	Stock       int    `json:"stock"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

func (in ToppingInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("name required")
	}
	if in.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	if in.PriceCents < 0 {
		return errors.New("price must not be negative")
	}
	return nil
}

func (s *Service) ListToppings(ctx context.Context) ([]domain.Topping, error) {
	return s.toppings.List(ctx)
}

func (s *Service) GetTopping(ctx context.Context, id string) (*domain.Topping, error) {
	return s.toppings.GetByID(ctx, id)
}

func (s *Service) CreateTopping(ctx context.Context, in ToppingInput) (*domain.Topping, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.toppings.Create(ctx, domain.Topping{
		Name:        strings.TrimSpace(in.Name),
		Stock:       in.Stock,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	})
}

func (s *Service) UpdateTopping(ctx context.Context, id string, in ToppingInput) (*domain.Topping, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.toppings.Update(ctx, domain.Topping{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Stock:       in.Stock,
		PriceCents:  in.PriceCents,
		ImageURL:    in.ImageURL,
		Description: in.Description,
	})
}

func (s *Service) DeleteTopping(ctx context.Context, id string) error {
	return s.toppings.Delete(ctx, id)
}

// --- Categories ---

type CategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	return s.categories.Create(ctx, domain.Category{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
}

func (s *Service) UpdateCategory(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("name required")
	}
	return s.categories.Update(ctx, domain.Category{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
	})
}

func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}
