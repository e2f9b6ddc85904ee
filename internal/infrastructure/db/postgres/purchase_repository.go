package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

type PurchaseRepository struct {
	db *sqlx.DB
}

func NewPurchaseRepository(db *sqlx.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

type purchaseRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Total     float64   `db:"total"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

type purchaseItemRow struct {
	PurchaseID string  `db:"purchase_id"`
	TourID     string  `db:"tour_id"`
	Title      string  `db:"title"`
	Price      float64 `db:"price"`
}

// Create persists a purchase and its line items in one transaction.
func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert purchase: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO purchases (id, user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, p.Total, string(p.Status), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}

	for _, item := range p.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO purchase_items (purchase_id, tour_id, title, price)
			VALUES ($1, $2, $3, $4)`,
			p.ID, item.TourID, item.Title, item.Price,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}

	return tx.Commit()
}

func (r *PurchaseRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Purchase, error) {
	var rows []purchaseRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM purchases WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return r.attachItems(ctx, rows)
}

func (r *PurchaseRepository) ListAll(ctx context.Context) ([]*domain.Purchase, error) {
	var rows []purchaseRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM purchases ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return r.attachItems(ctx, rows)
}

// attachItems loads the line items for a page of purchases with a single
// IN query and stitches them onto their parents.
func (r *PurchaseRepository) attachItems(ctx context.Context, rows []purchaseRow) ([]*domain.Purchase, error) {
	if len(rows) == 0 {
		return []*domain.Purchase{}, nil
	}

	ids := make([]string, len(rows))
	purchases := make([]*domain.Purchase, len(rows))
	byID := make(map[string]*domain.Purchase, len(rows))
	for i, row := range rows {
		p := &domain.Purchase{
			ID:        row.ID,
			UserID:    row.UserID,
			Items:     []domain.PurchaseItem{},
			Total:     row.Total,
			Status:    domain.PurchaseStatus(row.Status),
			CreatedAt: row.CreatedAt.UTC(),
		}
		ids[i] = row.ID
		purchases[i] = p
		byID[row.ID] = p
	}

	query, args, err := sqlx.In(`SELECT * FROM purchase_items WHERE purchase_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("load purchase items: %w", err)
	}

	var items []purchaseItemRow
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load purchase items: %w", err)
	}

	for _, item := range items {
		p := byID[item.PurchaseID]
		p.Items = append(p.Items, domain.PurchaseItem{
			TourID: item.TourID,
			Title:  item.Title,
			Price:  item.Price,
		})
	}

	return purchases, nil
}

func (r *PurchaseRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM purchases`); err != nil {
		return 0, fmt.Errorf("count purchases: %w", err)
	}
	return n, nil
}

func (r *PurchaseRepository) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	if err := r.db.GetContext(ctx, &total, `SELECT COALESCE(SUM(total), 0) FROM purchases`); err != nil {
		return 0, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}
