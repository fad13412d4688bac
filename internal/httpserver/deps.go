package httpserver

import (
	"context"
	"time"

	"warung-pos/internal/cart"
	"warung-pos/internal/domain"
	"warung-pos/internal/feed"
	purchaserepo "warung-pos/internal/repository/purchase"
	salerepo "warung-pos/internal/repository/sale"
	"warung-pos/internal/service/auth"
	"warung-pos/internal/service/catalog"
	"warung-pos/internal/service/purchase"
	"warung-pos/internal/service/report"
	"warung-pos/internal/service/sale"
	"warung-pos/internal/service/settings"
	"warung-pos/internal/service/user"
)

// The handler layer depends on narrow interfaces so tests can stub each
// service independently.

type authService interface {
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
	Verify(token string) (auth.Session, error)
}

type catalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, in catalog.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, in catalog.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	ListToppings(ctx context.Context) ([]domain.Topping, error)
	GetTopping(ctx context.Context, id string) (*domain.Topping, error)
	CreateTopping(ctx context.Context, in catalog.ToppingInput) (*domain.Topping, error)
	UpdateTopping(ctx context.Context, id string, in catalog.ToppingInput) (*domain.Topping, error)
	DeleteTopping(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in catalog.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, in catalog.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type saleService interface {
	Commit(ctx context.Context, cashier sale.Cashier, lines cart.Cart, method domain.PaymentMethod, totalCents int64, cashCents *int64) (*domain.Sale, error)
	List(ctx context.Context, f salerepo.ListFilter) ([]domain.Sale, error)
	Get(ctx context.Context, id string) (*domain.Sale, error)
	Delete(ctx context.Context, id string) error
}

type purchaseService interface {
	List(ctx context.Context, f purchaserepo.ListFilter) ([]domain.Purchase, error)
	Summary(ctx context.Context, f purchaserepo.ListFilter) (*purchase.SpendingSummary, error)
	Create(ctx context.Context, recorder purchase.Recorder, in purchase.Input) (*domain.Purchase, error)
	Update(ctx context.Context, id string, in purchase.Input) (*domain.Purchase, error)
	Delete(ctx context.Context, id string) error
}

type reportService interface {
	Summary(ctx context.Context, f salerepo.ListFilter) (*report.SalesSummary, error)
	Profit(ctx context.Context, from, to time.Time) (*report.ProfitReport, error)
}

type settingsService interface {
	Get(ctx context.Context) (*domain.StoreSettings, error)
	Update(ctx context.Context, in settings.UpdateInput) (*domain.StoreSettings, error)
	SetupRequired(ctx context.Context) (bool, error)
	Setup(ctx context.Context, in settings.SetupInput) (*domain.User, error)
	FactoryReset(ctx context.Context) error
}

type userService interface {
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, in user.CreateInput) (*domain.User, error)
	Update(ctx context.Context, id string, in user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// Deps wires services into the router.
type Deps struct {
	AuthSvc     authService
	CatalogSvc  catalogService
	SaleSvc     saleService
	PurchaseSvc purchaseService
	ReportSvc   reportService
	SettingsSvc settingsService
	UserSvc     userService
	CatalogFeed *feed.Watcher[feed.CatalogSnapshot]
}
