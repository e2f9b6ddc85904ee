package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// LoginResult carries everything the login endpoint returns. User is nil
// when a demo identity authenticated (demo identities have no store record).
type LoginResult struct {
	Token string
	Role  string
	User  *domain.User
	Demo  bool
}

// AuthService implements registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
