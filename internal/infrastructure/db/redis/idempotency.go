package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore records Idempotency-Key → card ID mappings so a replayed
// create returns the original card instead of inserting twice.
// Key format: idem:card:<key>
type IdempotencyStore struct {
	client *redis.Client
}

func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{client: client}
}

// Get returns the card ID previously recorded under key, or empty when the
// key has not been seen.
func (s *IdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	id, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("idempotency get: %w", err)
	}
	return id, nil
}

// Set records the card created under key (expires after idempotencyTTL).
func (s *IdempotencyStore) Set(ctx context.Context, key, cardID string) error {
	return s.client.Set(ctx, s.key(key), cardID, idempotencyTTL).Err()
}

func (s *IdempotencyStore) key(key string) string {
	return "idem:card:" + key
}
