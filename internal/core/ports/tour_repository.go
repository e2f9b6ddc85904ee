package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// TourRepository defines persistence operations for the tour catalog.
type TourRepository interface {
	Create(ctx context.Context, t *domain.Tour) error
	FindByID(ctx context.Context, id string) (*domain.Tour, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Tour, error)
	List(ctx context.Context) ([]*domain.Tour, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tour, error)
	Update(ctx context.Context, t *domain.Tour) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// SavedTourRepository tracks per-user bookmarked tours.
type SavedTourRepository interface {
	Save(ctx context.Context, userID, tourID string) error
	Unsave(ctx context.Context, userID, tourID string) error
	// SavedIDs returns the set of tour IDs the user has saved.
	SavedIDs(ctx context.Context, userID string) (map[string]bool, error)
}
