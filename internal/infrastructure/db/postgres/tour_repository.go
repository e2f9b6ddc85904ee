package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

type TourRepository struct {
	db *sqlx.DB
}

func NewTourRepository(db *sqlx.DB) *TourRepository {
	return &TourRepository{db: db}
}

type tourRow struct {
	ID          string    `db:"id"`
	OwnerID     string    `db:"owner_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	Duration    string    `db:"duration"`
	Location    string    `db:"location"`
	ImageURL    string    `db:"image_url"`
	Lat         float64   `db:"lat"`
	Lng         float64   `db:"lng"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r tourRow) toDomain() *domain.Tour {
	return &domain.Tour{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Duration:    r.Duration,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Coordinates: domain.Coordinates{Lat: r.Lat, Lng: r.Lng},
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

func toRows(rows []tourRow) []*domain.Tour {
	tours := make([]*domain.Tour, len(rows))
	for i, row := range rows {
		tours[i] = row.toDomain()
	}
	return tours
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tours (id, owner_id, title, description, price, duration, location, image_url, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		t.ID, t.OwnerID, t.Title, t.Description, t.Price, t.Duration, t.Location,
		t.ImageURL, t.Coordinates.Lat, t.Coordinates.Lng, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}
	return nil
}

func (r *TourRepository) FindByID(ctx context.Context, id string) (*domain.Tour, error) {
	var row tourRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM tours WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTourNotFound
		}
		return nil, fmt.Errorf("find tour: %w", err)
	}
	return row.toDomain(), nil
}

func (r *TourRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Tour, error) {
	if len(ids) == 0 {
		return []*domain.Tour{}, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM tours WHERE id IN (?) ORDER BY created_at DESC`, ids)
	if err != nil {
		return nil, fmt.Errorf("find tours by ids: %w", err)
	}

	var rows []tourRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("find tours by ids: %w", err)
	}
	return toRows(rows), nil
}

func (r *TourRepository) List(ctx context.Context) ([]*domain.Tour, error) {
	var rows []tourRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM tours ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return toRows(rows), nil
}

func (r *TourRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Tour, error) {
	var rows []tourRow
	err := r.db.SelectContext(ctx, &rows, `SELECT * FROM tours WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list tours by owner: %w", err)
	}
	return toRows(rows), nil
}

func (r *TourRepository) Update(ctx context.Context, t *domain.Tour) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tours
		SET title = $2, description = $3, price = $4, duration = $5, location = $6,
		    image_url = $7, lat = $8, lng = $9, updated_at = $10
		WHERE id = $1`,
		t.ID, t.Title, t.Description, t.Price, t.Duration, t.Location,
		t.ImageURL, t.Coordinates.Lat, t.Coordinates.Lng, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update tour: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrTourNotFound
	}
	return nil
}

func (r *TourRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM tours`); err != nil {
		return 0, fmt.Errorf("count tours: %w", err)
	}
	return n, nil
}
