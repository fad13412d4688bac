package user

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"warung-pos/internal/domain"
	userrepo "warung-pos/internal/repository/user"
)

const passwordMin = 6

// Service manages cashier/admin accounts. Admin-only at the HTTP layer.
type Service struct {
	repo userrepo.Repository
}

func New(repo userrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type UpdateInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"` // empty keeps the current password
	Role     string `json:"role"`
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	username := strings.TrimSpace(strings.ToLower(in.Username))
	if name == "" {
		return nil, errors.New("name required")
	}
	if username == "" {
		return nil, errors.New("username required")
	}
	if len(in.Password) < passwordMin {
		return nil, errors.New("password too short")
	}
	if !domain.ValidRole(in.Role) {
		return nil, errors.New("invalid role")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.User{
		Name:         name,
		Username:     username,
		PasswordHash: string(hashed),
		Role:         in.Role,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.User, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		current.Name = name
	}
	if username := strings.TrimSpace(strings.ToLower(in.Username)); username != "" {
		current.Username = username
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, errors.New("invalid role")
		}
		current.Role = in.Role
	}
	if in.Password != "" {
		if len(in.Password) < passwordMin {
			return nil, errors.New("password too short")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		current.PasswordHash = string(hashed)
	}
	return s.repo.Update(ctx, *current)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
