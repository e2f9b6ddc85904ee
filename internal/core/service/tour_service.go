package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

// TourService implements the catalog use cases.
type TourService struct {
	tours  ports.TourRepository
	saved  ports.SavedTourRepository
	logger zerolog.Logger
}

func NewTourService(tours ports.TourRepository, saved ports.SavedTourRepository, logger zerolog.Logger) *TourService {
	return &TourService{tours: tours, saved: saved, logger: logger}
}

func (s *TourService) Create(ctx context.Context, ownerID string, in ports.TourInput) (*domain.Tour, error) {
	now := time.Now().UTC()
	tour := &domain.Tour{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Duration:    in.Duration,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
		Coordinates: domain.Coordinates{Lat: in.Lat, Lng: in.Lng},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create tour")
		return nil, err
	}

	s.logger.Info().Str("tour_id", tour.ID).Str("owner_id", ownerID).Msg("tour created")
	return tour, nil
}

func (s *TourService) Get(ctx context.Context, id string) (*domain.Tour, error) {
	return s.tours.FindByID(ctx, id)
}

func (s *TourService) List(ctx context.Context, viewerID string) ([]ports.TourView, error) {
	tours, err := s.tours.List(ctx)
	if err != nil {
		return nil, err
	}

	savedIDs := map[string]bool{}
	if viewerID != "" {
		savedIDs, err = s.saved.SavedIDs(ctx, viewerID)
		if err != nil {
			// Bookmark state is decoration; the catalog still renders.
			s.logger.Warn().Err(err).Str("user_id", viewerID).Msg("failed to load saved tours")
			savedIDs = map[string]bool{}
		}
	}

	views := make([]ports.TourView, len(tours))
	for i, t := range tours {
		views[i] = ports.TourView{Tour: *t, IsSaved: savedIDs[t.ID]}
	}
	return views, nil
}

func (s *TourService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tour, error) {
	return s.tours.ListByOwner(ctx, ownerID)
}

func (s *TourService) Update(ctx context.Context, id, actorID, actorRole string, in ports.TourInput) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authorizeTourMutation(tour, actorID, actorRole); err != nil {
		return nil, err
	}

	tour.Title = in.Title
	tour.Description = in.Description
	tour.Price = in.Price
	tour.Duration = in.Duration
	tour.Location = in.Location
	tour.ImageURL = in.ImageURL
	tour.Coordinates = domain.Coordinates{Lat: in.Lat, Lng: in.Lng}
	tour.UpdatedAt = time.Now().UTC()

	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, err
	}
	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id, actorID, actorRole string) error {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authorizeTourMutation(tour, actorID, actorRole); err != nil {
		return err
	}
	if err := s.tours.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("tour_id", id).Str("actor_id", actorID).Msg("tour deleted")
	return nil
}

func (s *TourService) Save(ctx context.Context, userID, tourID string) error {
	if _, err := s.tours.FindByID(ctx, tourID); err != nil {
		return err
	}
	return s.saved.Save(ctx, userID, tourID)
}

func (s *TourService) Unsave(ctx context.Context, userID, tourID string) error {
	return s.saved.Unsave(ctx, userID, tourID)
}

func (s *TourService) ListSaved(ctx context.Context, userID string) ([]*domain.Tour, error) {
	ids, err := s.saved.SavedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*domain.Tour{}, nil
	}

	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	return s.tours.FindByIDs(ctx, list)
}

// authorizeTourMutation allows admins to touch any tour and guides only
// their own.
func authorizeTourMutation(tour *domain.Tour, actorID, actorRole string) error {
	if actorRole == domain.RoleAdmin {
		return nil
	}
	if tour.OwnerID != actorID {
		return domain.ErrForbidden
	}
	return nil
}
