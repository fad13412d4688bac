package settings

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"warung-pos/internal/domain"
	settingsrepo "warung-pos/internal/repository/settings"
)

// Defaults applied when the store profile is first created.
var defaultSettings = domain.StoreSettings{
	StoreName:        "Toko Anda",
	ProfitPercentage: 30,
}

type userRepo interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}

type Service struct {
	repo  settingsrepo.Repository
	users userRepo
}

func New(repo settingsrepo.Repository, users userRepo) *Service {
	return &Service{repo: repo, users: users}
}

// Get returns the store settings, falling back to defaults when none have
// been saved yet.
func (s *Service) Get(ctx context.Context) (*domain.StoreSettings, error) {
	out, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			def := defaultSettings
			return &def, nil
		}
		return nil, err
	}
	return out, nil
}

// UpdateInput carries a partial settings update; nil fields keep their
// current value.
type UpdateInput struct {
	StoreName        *string  `json:"storeName"`
	Address          *string  `json:"address"`
	Phone            *string  `json:"phone"`
	Owner            *string  `json:"owner"`
	LogoURL          *string  `json:"logoUrl"`
	ProfitPercentage *float64 `json:"profitPercentage"`
}

// Update merges the provided fields into the stored settings, creating the
// row when missing.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*domain.StoreSettings, error) {
	current, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		def := defaultSettings
		current = &def
	}
	if in.StoreName != nil {
		if strings.TrimSpace(*in.StoreName) == "" {
			return nil, errors.New("store name required")
		}
		current.StoreName = strings.TrimSpace(*in.StoreName)
	}
	if in.Address != nil {
		current.Address = *in.Address
	}
	if in.Phone != nil {
		current.Phone = *in.Phone
	}
	if in.Owner != nil {
		current.Owner = *in.Owner
	}
	if in.LogoURL != nil {
		current.LogoURL = *in.LogoURL
	}
	if in.ProfitPercentage != nil {
		if *in.ProfitPercentage < 0 || *in.ProfitPercentage > 100 {
			return nil, errors.New("profit percentage must be between 0 and 100")
		}
		current.ProfitPercentage = *in.ProfitPercentage
	}
	return s.repo.Put(ctx, *current)
}

// SetupRequired reports whether the first-time setup has not run yet, i.e.
// no user account exists.
func (s *Service) SetupRequired(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// SetupInput bootstraps the first admin account together with the store
// profile.
type SetupInput struct {
	StoreName     string `json:"storeName"`
	AdminName     string `json:"adminName"`
	AdminUsername string `json:"adminUsername"`
	AdminPassword string `json:"adminPassword"`
}

// ErrAlreadySetUp rejects a second setup attempt once any user exists.
var ErrAlreadySetUp = errors.New("setup already completed")

// Setup creates the first admin and the initial settings row.
func (s *Service) Setup(ctx context.Context, in SetupInput) (*domain.User, error) {
	required, err := s.SetupRequired(ctx)
	if err != nil {
		return nil, err
	}
	if !required {
		return nil, ErrAlreadySetUp
	}
	if strings.TrimSpace(in.AdminName) == "" || strings.TrimSpace(in.AdminUsername) == "" {
		return nil, errors.New("admin name and username required")
	}
	if len(in.AdminPassword) < 6 {
		return nil, errors.New("password too short")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.AdminName),
		Username:     strings.TrimSpace(strings.ToLower(in.AdminUsername)),
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		return nil, err
	}

	initial := defaultSettings
	if name := strings.TrimSpace(in.StoreName); name != "" {
		initial.StoreName = name
	}
	if _, err := s.repo.Put(ctx, initial); err != nil {
		return nil, err
	}
	return admin, nil
}

// FactoryReset wipes all application data. Admin-only at the HTTP layer.
func (s *Service) FactoryReset(ctx context.Context) error {
	return s.repo.FactoryReset(ctx)
}
