package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// CartService joins the Redis-backed cart against the tour catalog.
type CartService struct {
	store  ports.CartStore
	tours  ports.TourRepository
	logger zerolog.Logger
}

func NewCartService(store ports.CartStore, tours ports.TourRepository, logger zerolog.Logger) *CartService {
	return &CartService{store: store, tours: tours, logger: logger}
}

func (s *CartService) Add(ctx context.Context, userID, tourID string) error {
	// Reject IDs that don't resolve to a catalog entry before storing.
	if _, err := s.tours.FindByID(ctx, tourID); err != nil {
		return err
	}
	if err := s.store.Add(ctx, userID, tourID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("tour_id", tourID).Msg("cart add failed")
		return err
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, userID, tourID string) error {
	return s.store.Remove(ctx, userID, tourID)
}

func (s *CartService) Contents(ctx context.Context, userID string) (*ports.CartContents, error) {
	ids, err := s.store.TourIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return &ports.CartContents{Items: []*domain.Tour{}}, nil
	}

	tours, err := s.tours.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	contents := &ports.CartContents{Items: tours}
	for _, t := range tours {
		contents.Total += t.Price
	}
	return contents, nil
}
