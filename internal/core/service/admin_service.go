package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// AdminService aggregates across repositories for the admin dashboard.
type AdminService struct {
	users     ports.UserRepository
	tours     ports.TourRepository
	purchases ports.PurchaseRepository
	logger    zerolog.Logger
}

func NewAdminService(users ports.UserRepository, tours ports.TourRepository, purchases ports.PurchaseRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{users: users, tours: tours, purchases: purchases, logger: logger}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	tourCount, err := s.tours.Count(ctx)
	if err != nil {
		return nil, err
	}
	purchaseCount, err := s.purchases.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.purchases.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		Users:     userCount,
		Tours:     tourCount,
		Purchases: purchaseCount,
		Revenue:   revenue,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user removed by admin")
	return nil
}

func (s *AdminService) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	return s.purchases.ListAll(ctx)
}
