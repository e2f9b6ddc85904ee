package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// UserService implements self-service account use cases.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID string, in ports.ProfileInput) (*domain.User, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidCredentials
	}
	return s.repo.UpdateProfile(ctx, userID, in.Name, in.ProfileImage)
}

// BecomeGuide promotes a plain user to guide. The promotion is visible in
// the store immediately but all outstanding tokens keep the role they were
// issued with; the caller must log in again to get a guide token.
func (s *UserService) BecomeGuide(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleUser {
		return nil, domain.ErrForbidden
	}

	if err := s.repo.UpdateRole(ctx, userID, domain.RoleGuide); err != nil {
		return nil, err
	}
	user.Role = domain.RoleGuide

	s.logger.Info().Str("user_id", userID).Msg("user promoted to guide")
	return user, nil
}
