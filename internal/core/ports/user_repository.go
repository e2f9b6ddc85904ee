package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts. Email
// uniqueness is enforced by the store itself; Create surfaces a violation
// as domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, profileImage string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) error
	List(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
