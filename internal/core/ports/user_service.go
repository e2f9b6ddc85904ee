package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// ProfileInput carries the self-service editable fields. Email and role are
// immutable through profile updates.
type ProfileInput struct {
	Name         string
	ProfileImage string
}

// UserService defines self-service account use cases.
type UserService interface {
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*domain.User, error)
	// BecomeGuide promotes a "user" account to "guide". The new role takes
	// effect on the next login; tokens already issued keep their role claim.
	BecomeGuide(ctx context.Context, userID string) (*domain.User, error)
}
