package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Users     int64   `json:"users"`
	Tours     int64   `json:"tours"`
	Purchases int64   `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

// AdminService defines the admin dashboard use cases. Role gating happens
// at the transport layer; these methods assume an admin caller.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
	ListPurchases(ctx context.Context) ([]*domain.Purchase, error)
}
