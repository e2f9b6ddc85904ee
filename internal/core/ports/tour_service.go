package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// TourInput carries the writable fields of a tour.
type TourInput struct {
	Title       string
	Description string
	Price       float64
	Duration    string
	Location    string
	ImageURL    string
	Lat         float64
	Lng         float64
}

// TourView is a catalog entry decorated with viewer-specific state.
type TourView struct {
	domain.Tour
	IsSaved bool `json:"is_saved"`
}

// TourService defines catalog use cases. Mutations are gated by ownership:
// a guide may only touch their own tours, an admin may touch any.
type TourService interface {
	Create(ctx context.Context, ownerID string, in TourInput) (*domain.Tour, error)
	Get(ctx context.Context, id string) (*domain.Tour, error)
	// List returns the catalog. viewerID may be empty (anonymous); when set,
	// each entry's IsSaved reflects the viewer's bookmarks.
	List(ctx context.Context, viewerID string) ([]TourView, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tour, error)
	Update(ctx context.Context, id, actorID, actorRole string, in TourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id, actorID, actorRole string) error

	Save(ctx context.Context, userID, tourID string) error
	Unsave(ctx context.Context, userID, tourID string) error
	ListSaved(ctx context.Context, userID string) ([]*domain.Tour, error)
}
