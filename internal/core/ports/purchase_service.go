package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// PurchaseService checks out carts and reads purchase history. Payment form
// data is accepted at the transport layer and discarded; no gateway is
// called.
type PurchaseService interface {
	// Checkout records a purchase of everything in the user's cart and
	// clears the cart. Returns domain.ErrCartEmpty when there is nothing
	// to buy.
	Checkout(ctx context.Context, userID string) (*domain.Purchase, error)
	History(ctx context.Context, userID string) ([]*domain.Purchase, error)
}
