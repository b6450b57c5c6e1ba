package ports

import (
	"context"
	"time"

	"tourist-route-service/internal/domain"
)

// Port: a boundary for reading and writing content submissions
// (reviews and questions).
type SubmissionStore interface {
	// Count submissions of one type by one user created after since.
	CountRecent(ctx context.Context, userID string, ct domain.ContentType, since time.Time) (int, error)
	// Report whether the user already has a submission of this type for
	// the POI created after since.
	HasRecentForPOI(ctx context.Context, userID string, ct domain.ContentType, poiID string, since time.Time) (bool, error)
	// Persist a new submission.
	AddSubmission(ctx context.Context, sub domain.ContentSubmission) error
	// Return non-hidden submissions for a POI, newest first.
	ListVisibleForPOI(ctx context.Context, poiID string, ct domain.ContentType) ([]domain.ContentSubmission, error)
	// Write moderation annotations onto an existing submission.
	ApplyModeration(ctx context.Context, id string, res domain.ModerationResult) error
}
