package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// CartStore holds the per-user cart contents (backed by Redis).
type CartStore interface {
	Add(ctx context.Context, userID, tourID string) error
	Remove(ctx context.Context, userID, tourID string) error
	TourIDs(ctx context.Context, userID string) ([]string, error)
	Clear(ctx context.Context, userID string) error
}

// CartContents is the resolved cart: stored tour IDs joined against the
// catalog, with a precomputed total.
type CartContents struct {
	Items []*domain.Tour `json:"items"`
	Total float64        `json:"total"`
}

// CartService defines cart use cases.
type CartService interface {
	Add(ctx context.Context, userID, tourID string) error
	Remove(ctx context.Context, userID, tourID string) error
	Contents(ctx context.Context, userID string) (*CartContents, error)
}
