package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Abandoned carts expire on their own; every write renews the clock.
const cartTTL = 30 * 24 * time.Hour

// CartStore keeps each user's cart as a Redis set of tour IDs.
// Key format: cart:<user_id>
type CartStore struct {
	client *redis.Client
}

func NewCartStore(client *redis.Client) *CartStore {
	return &CartStore{client: client}
}

func (s *CartStore) Add(ctx context.Context, userID, tourID string) error {
	key := s.key(userID)
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, tourID)
	pipe.Expire(ctx, key, cartTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cart add: %w", err)
	}
	return nil
}

func (s *CartStore) Remove(ctx context.Context, userID, tourID string) error {
	if err := s.client.SRem(ctx, s.key(userID), tourID).Err(); err != nil {
		return fmt.Errorf("cart remove: %w", err)
	}
	return nil
}

func (s *CartStore) TourIDs(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("cart members: %w", err)
	}
	return ids, nil
}

func (s *CartStore) Clear(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("cart clear: %w", err)
	}
	return nil
}

func (s *CartStore) key(userID string) string {
	return "cart:" + userID
}
