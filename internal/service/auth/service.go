// Package auth handles login and session tokens. A session is a signed
// HS256 JWT carrying the acting user's id, name and role; the checkout
// engine receives that identity explicitly rather than reading global state.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"warung-pos/internal/domain"
	userrepo "warung-pos/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when username/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Session is the verified identity carried by a token.
type Session struct {
	UserID   string
	Name     string
	Role     string
	Username string
}

type Service struct {
	repo   userrepo.Repository
	secret []byte
	ttl    time.Duration
}

func New(repo userrepo.Repository, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Service{repo: repo, secret: []byte(secret), ttl: ttl}
}

// LoginResult carries the issued token plus the user for the client session.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresIn int         `json:"expiresIn"` // seconds
	User      domain.User `json:"user"`
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Hide whether the username exists.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"name":     user.Name,
		"role":     user.Role,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     signed,
		ExpiresIn: int(s.ttl / time.Second),
		User:      *user,
	}, nil
}

// Verify parses and validates a session token.
func (s *Service) Verify(tokenStr string) (Session, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Session{}, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	username, _ := claims["username"].(string)
	return Session{UserID: sub, Name: name, Role: role, Username: username}, nil
}
