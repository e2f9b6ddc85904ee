package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/ports"
)

func seedUser(repo *stubUserRepo, id, email, role string) {
	repo.users[email] = &domain.User{ID: id, Name: "Test", Email: email, Role: role}
}

func TestUserService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "a@example.com", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.UpdateProfile(context.Background(), "u1", ports.ProfileInput{Name: "Alice", ProfileImage: "https://img/a.png"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.Name != "Alice" || user.ProfileImage != "https://img/a.png" {
		t.Fatalf("update not applied: %+v", user)
	}
	if user.Email != "a@example.com" {
		t.Fatalf("email must be immutable")
	}
}

func TestUserService_UpdateProfile_EmptyName(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "a@example.com", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.UpdateProfile(context.Background(), "u1", ports.ProfileInput{}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_BecomeGuide(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "a@example.com", domain.RoleUser)
	svc := NewUserService(repo, zerolog.Nop())

	user, err := svc.BecomeGuide(context.Background(), "u1")
	if err != nil {
		t.Fatalf("promotion failed: %v", err)
	}
	if user.Role != domain.RoleGuide {
		t.Fatalf("expected guide role, got %s", user.Role)
	}
	if repo.users["a@example.com"].Role != domain.RoleGuide {
		t.Fatalf("promotion not persisted")
	}
}

func TestUserService_BecomeGuide_AlreadyGuide(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "a@example.com", domain.RoleGuide)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.BecomeGuide(context.Background(), "u1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_BecomeGuide_Admin(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(repo, "u1", "a@example.com", domain.RoleAdmin)
	svc := NewUserService(repo, zerolog.Nop())

	if _, err := svc.BecomeGuide(context.Background(), "u1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_Profile_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Profile(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
