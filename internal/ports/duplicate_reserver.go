package ports

import (
	"context"
	"time"

	"tourist-route-service/internal/domain"
)

// Port: an atomic check-and-set reservation for the duplicate-content
// rule. Reserve succeeds for at most one caller per (user, type, poi)
// within the TTL window, which closes the race two concurrent
// submissions would otherwise win together.
type DuplicateReserver interface {
	// Reserve returns false when the slot is already taken.
	Reserve(ctx context.Context, userID string, ct domain.ContentType, poiID string, ttl time.Duration) (bool, error)
	// Release frees a reservation after a failed create so the user can
	// retry.
	Release(ctx context.Context, userID string, ct domain.ContentType, poiID string) error
}
