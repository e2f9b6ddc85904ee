package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/colonialstours/tours-api/internal/core/domain"
)

type SavedTourRepository struct {
	db *sqlx.DB
}

func NewSavedTourRepository(db *sqlx.DB) *SavedTourRepository {
	return &SavedTourRepository{db: db}
}

func (r *SavedTourRepository) Save(ctx context.Context, userID, tourID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saved_tours (user_id, tour_id) VALUES ($1, $2)`,
		userID, tourID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrAlreadySaved
		}
		return fmt.Errorf("save tour: %w", err)
	}
	return nil
}

func (r *SavedTourRepository) Unsave(ctx context.Context, userID, tourID string) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM saved_tours WHERE user_id = $1 AND tour_id = $2`,
		userID, tourID,
	)
	if err != nil {
		return fmt.Errorf("unsave tour: %w", err)
	}
	return nil
}

func (r *SavedTourRepository) SavedIDs(ctx context.Context, userID string) (map[string]bool, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids, `SELECT tour_id FROM saved_tours WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list saved tours: %w", err)
	}

	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
