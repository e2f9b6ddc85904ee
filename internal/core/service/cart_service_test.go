package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

type stubCartStore struct {
	carts    map[string][]string
	clearErr error
}

func newStubCartStore() *stubCartStore {
	return &stubCartStore{carts: make(map[string][]string)}
}

func (s *stubCartStore) Add(_ context.Context, userID, tourID string) error {
	for _, id := range s.carts[userID] {
		if id == tourID {
			return nil
		}
	}
	s.carts[userID] = append(s.carts[userID], tourID)
	return nil
}

func (s *stubCartStore) Remove(_ context.Context, userID, tourID string) error {
	ids := s.carts[userID]
	for i, id := range ids {
		if id == tourID {
			s.carts[userID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubCartStore) TourIDs(_ context.Context, userID string) ([]string, error) {
	return append([]string{}, s.carts[userID]...), nil
}

func (s *stubCartStore) Clear(_ context.Context, userID string) error {
	if s.clearErr != nil {
		return s.clearErr
	}
	delete(s.carts, userID)
	return nil
}

func seedTour(repo *stubTourRepo, id, title string, price float64) {
	repo.tours[id] = &domain.Tour{ID: id, Title: title, Price: price}
}

func TestCartService_Add_UnknownTour(t *testing.T) {
	store := newStubCartStore()
	tours := newStubTourRepo()
	svc := NewCartService(store, tours, zerolog.Nop())

	if err := svc.Add(context.Background(), "user-1", "missing"); !errors.Is(err, domain.ErrTourNotFound) {
		t.Fatalf("expected ErrTourNotFound, got %v", err)
	}
	if len(store.carts["user-1"]) != 0 {
		t.Fatalf("unknown tour must not be stored")
	}
}

func TestCartService_Contents(t *testing.T) {
	store := newStubCartStore()
	tours := newStubTourRepo()
	seedTour(tours, "t1", "Walking Tour", 25)
	seedTour(tours, "t2", "Boat Tour", 40)
	svc := NewCartService(store, tours, zerolog.Nop())

	if err := svc.Add(context.Background(), "user-1", "t1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Add(context.Background(), "user-1", "t2"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	contents, err := svc.Contents(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("contents failed: %v", err)
	}
	if len(contents.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(contents.Items))
	}
	if contents.Total != 65 {
		t.Fatalf("expected total 65, got %v", contents.Total)
	}
}

func TestCartService_Contents_Empty(t *testing.T) {
	svc := NewCartService(newStubCartStore(), newStubTourRepo(), zerolog.Nop())

	contents, err := svc.Contents(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("contents failed: %v", err)
	}
	if contents.Items == nil || len(contents.Items) != 0 {
		t.Fatalf("expected empty item slice, got %+v", contents.Items)
	}
	if contents.Total != 0 {
		t.Fatalf("expected zero total, got %v", contents.Total)
	}
}

func TestCartService_Remove(t *testing.T) {
	store := newStubCartStore()
	tours := newStubTourRepo()
	seedTour(tours, "t1", "Walking Tour", 25)
	svc := NewCartService(store, tours, zerolog.Nop())

	_ = svc.Add(context.Background(), "user-1", "t1")
	if err := svc.Remove(context.Background(), "user-1", "t1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	contents, _ := svc.Contents(context.Background(), "user-1")
	if len(contents.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(contents.Items))
	}
}
