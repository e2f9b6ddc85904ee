package ports

import (
	"context"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

// PurchaseRepository persists purchases and their line items.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Purchase, error)
	ListAll(ctx context.Context) ([]*domain.Purchase, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
}
