package guard

import (
	"context"
	"fmt"
	"time"

	"tourist-route-service/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Redis-backed implementation of the DuplicateReserver port. SET NX with
// a TTL makes the duplicate check a single check-and-set operation, so
// two concurrent submissions for the same slot cannot both pass.
type RedisDuplicateReserver struct {
	client *redis.Client
}

func NewRedisDuplicateReserver(client *redis.Client) *RedisDuplicateReserver {
	return &RedisDuplicateReserver{client: client}
}

func key(userID string, ct domain.ContentType, poiID string) string {
	return fmt.Sprintf("dup:%s:%s:%s", userID, ct, poiID)
}

func (r *RedisDuplicateReserver) Reserve(ctx context.Context, userID string, ct domain.ContentType, poiID string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, key(userID, ct, poiID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("reserve duplicate slot: %w", err)
	}
	return ok, nil
}

func (r *RedisDuplicateReserver) Release(ctx context.Context, userID string, ct domain.ContentType, poiID string) error {
	if err := r.client.Del(ctx, key(userID, ct, poiID)).Err(); err != nil {
		return fmt.Errorf("release duplicate slot: %w", err)
	}
	return nil
}
