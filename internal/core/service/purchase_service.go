package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// PurchaseService records checkouts. There is no payment gateway: the
// purchase is stored as completed and the submitted payment form data is
// never persisted.
type PurchaseService struct {
	purchases ports.PurchaseRepository
	cart      ports.CartService
	store     ports.CartStore
	logger    zerolog.Logger
}

func NewPurchaseService(purchases ports.PurchaseRepository, cart ports.CartService, store ports.CartStore, logger zerolog.Logger) *PurchaseService {
	return &PurchaseService{purchases: purchases, cart: cart, store: store, logger: logger}
}

func (s *PurchaseService) Checkout(ctx context.Context, userID string) (*domain.Purchase, error) {
	contents, err := s.cart.Contents(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(contents.Items) == 0 {
		return nil, domain.ErrCartEmpty
	}

	items := make([]domain.PurchaseItem, len(contents.Items))
	for i, t := range contents.Items {
		items[i] = domain.PurchaseItem{TourID: t.ID, Title: t.Title, Price: t.Price}
	}

	purchase := &domain.Purchase{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     contents.Total,
		Status:    domain.PurchaseCompleted,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to record purchase")
		return nil, err
	}

	// The purchase is already durable; a failed cart clear only leaves
	// stale cart entries behind.
	if err := s.store.Clear(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to clear cart after checkout")
	}

	s.logger.Info().
		Str("purchase_id", purchase.ID).
		Str("user_id", userID).
		Float64("total", purchase.Total).
		Int("items", len(items)).
		Msg("purchase recorded")

	return purchase, nil
}

func (s *PurchaseService) History(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	return s.purchases.ListByUser(ctx, userID)
}
