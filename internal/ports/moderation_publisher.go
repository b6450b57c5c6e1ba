package ports

import "tourist-route-service/internal/domain"

// Event emitted after a submission is durably created. Carries enough
// state for the moderation worker to scan without re-reading the store.
type ModerationEvent struct {
	ContentType domain.ContentType
	ContentID   string
	POIID       string
	UserID      string
	Text        string
}

// Port: fire-and-forget hand-off of submissions to the moderation
// worker. Publish must never block or fail the creation path.
type ModerationPublisher interface {
	Publish(ev ModerationEvent)
}
