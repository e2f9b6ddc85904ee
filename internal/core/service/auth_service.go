package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// MinPasswordLength is enforced before any store write.
const MinPasswordLength = 6

var errNoSigningSecret = errors.New("jwt signing secret is not configured")

// AuthService implements registration and login. Demo identities are
// checked before the user store and never touch it.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if len(password) < MinPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}
	if domain.IsDemoEmail(email) {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	// Demo identities short-circuit the store entirely.
	if demo, ok := domain.LookupDemo(email, password); ok {
		token, err := s.signToken(demo.Email, demo.Email, demo.Role)
		if err != nil {
			return nil, err
		}
		return &ports.LoginResult{Token: token, Role: demo.Role, Demo: true}, nil
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Never reveal whether the email exists.
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	return &ports.LoginResult{Token: token, Role: user.Role, User: user}, nil
}

// signToken mints an HS256 token with a fixed lifetime. The role claim is
// fixed at issuance; role changes only take effect after a fresh login.
func (s *AuthService) signToken(subject, email, role string) (string, error) {
	if s.jwtSecret == "" {
		return "", errNoSigningSecret
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
