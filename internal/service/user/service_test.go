package user

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"warung-pos/internal/domain"
)

type stubRepo struct {
	byID map[string]domain.User
}

func (s *stubRepo) List(context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *stubRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	u.ID = "u-new"
	return &u, nil
}

func (s *stubRepo) Update(_ context.Context, u domain.User) (*domain.User, error) {
	s.byID[u.ID] = u
	return &u, nil
}

func (s *stubRepo) Delete(context.Context, string) error { return nil }
func (s *stubRepo) Count(context.Context) (int, error)   { return len(s.byID), nil }

func TestCreateHashesPasswordAndNormalizes(t *testing.T) {
	svc := New(&stubRepo{})

	created, err := svc.Create(context.Background(), CreateInput{
		Name:     " Budi ",
		Username: " BuDi ",
		Password: "rahasia1",
		Role:     domain.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Budi" || created.Username != "budi" {
		t.Fatalf("input not normalized: %+v", created)
	}
	if created.PasswordHash == "rahasia1" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("rahasia1")); err != nil {
		t.Fatalf("hash does not match password: %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := New(&stubRepo{})
	tests := []struct {
		name string
		in   CreateInput
	}{
		{"missing name", CreateInput{Username: "budi", Password: "rahasia1", Role: domain.RoleEmployee}},
		{"missing username", CreateInput{Name: "Budi", Password: "rahasia1", Role: domain.RoleEmployee}},
		{"short password", CreateInput{Name: "Budi", Username: "budi", Password: "12345", Role: domain.RoleEmployee}},
		{"bad role", CreateInput{Name: "Budi", Username: "budi", Password: "rahasia1", Role: "owner"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.in); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	repo := &stubRepo{byID: map[string]domain.User{
		"u-1": {ID: "u-1", Name: "Budi", Username: "budi", PasswordHash: "old-hash", Role: domain.RoleEmployee},
	}}
	svc := New(repo)

	updated, err := svc.Update(context.Background(), "u-1", UpdateInput{Name: "Budi S.", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash != "old-hash" {
		t.Fatalf("password changed on empty input: %q", updated.PasswordHash)
	}
	if updated.Name != "Budi S." || updated.Role != domain.RoleAdmin {
		t.Fatalf("fields not updated: %+v", updated)
	}

	updated, err = svc.Update(context.Background(), "u-1", UpdateInput{Password: "rahasia2"})
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("rahasia2")); err != nil {
		t.Fatalf("new password not hashed: %v", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := New(&stubRepo{byID: map[string]domain.User{}})
	if _, err := svc.Update(context.Background(), "missing", UpdateInput{Name: "X"}); err == nil {
		t.Fatal("expected not found")
	}
}
