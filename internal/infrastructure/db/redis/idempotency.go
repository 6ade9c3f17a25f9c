package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyStore maps client-supplied Idempotency-Key values to the id of
// the entity the first request created.
// Key format: idem:<scope>:<owner_id>:<key>
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewIdempotencyStore(client redis.Cmdable) *IdempotencyStore {
	return &IdempotencyStore{client: client, ttl: idempotencyTTL}
}

func (s *IdempotencyStore) Lookup(ctx context.Context, scope string, ownerID uint, key string) (uint, bool, error) {
	v, err := s.client.Get(ctx, s.key(scope, ownerID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: corrupt value %q", v)
	}
	return uint(id), true, nil
}

// Remember keeps the first id stored under a key.
func (s *IdempotencyStore) Remember(ctx context.Context, scope string, ownerID uint, key string, id uint) error {
	err := s.client.SetNX(ctx, s.key(scope, ownerID, key), strconv.FormatUint(uint64(id), 10), s.ttl).Err()
	if err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope string, ownerID uint, key string) string {
	return fmt.Sprintf("idem:%s:%d:%s", scope, ownerID, key)
}
