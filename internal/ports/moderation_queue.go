package ports

import (
	"context"

	"tourist-route-service/internal/domain"
)

// Port: the human-review backlog. Entries are created by the moderation
// worker; status transitions happen through an external moderator tool.
type ModerationQueue interface {
	Enqueue(ctx context.Context, entry domain.ModerationQueueEntry) error
}
