package services

import (
	"context"
	"fmt"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"

	"go.uber.org/zap"
)

// Sliding-window length for both the daily cap and the duplicate rule.
const quotaWindow = 24 * time.Hour

// Daily submission caps by content type.
var dailyCaps = map[domain.ContentType]int{
	domain.ContentTypeReview:   10,
	domain.ContentTypeQuestion: 5,
}

// QuotaGuard is the reject-fast gate in front of content creation. It
// reads and decides; it does not create the submission itself. The two
// store reads are not atomic with the caller's write — the duplicate
// side of that race is closed by the DuplicateReserver on the write
// path, the cap count stays read-then-decide.
type QuotaGuard struct {
	subs   ports.SubmissionStore
	logger *zap.Logger
	now    func() time.Time
}

func NewQuotaGuard(subs ports.SubmissionStore, logger *zap.Logger) *QuotaGuard {
	return &QuotaGuard{subs: subs, logger: logger, now: time.Now}
}

// Check returns the remaining quota after the submission the caller is
// about to make, or ErrQuotaExceeded / ErrDuplicateContent.
func (g *QuotaGuard) Check(ctx context.Context, userID string, ct domain.ContentType, poiID string) (int, error) {
	if !ct.Valid() {
		return 0, domain.ErrInvalidInput
	}

	maxDaily := dailyCaps[ct]
	since := g.now().Add(-quotaWindow)

	count, err := g.subs.CountRecent(ctx, userID, ct, since)
	if err != nil {
		return 0, fmt.Errorf("check quota: count recent %ss: %w", ct, err)
	}
	if count >= maxDaily {
		g.logger.Info("submission quota exceeded",
			zap.String("userId", userID),
			zap.String("contentType", string(ct)),
			zap.Int("count", count))
		return 0, domain.ErrQuotaExceeded
	}

	// The duplicate rule holds regardless of remaining quota.
	dup, err := g.subs.HasRecentForPOI(ctx, userID, ct, poiID, since)
	if err != nil {
		return 0, fmt.Errorf("check quota: duplicate lookup: %w", err)
	}
	if dup {
		return 0, domain.ErrDuplicateContent
	}

	// Reserve capacity for the submission the caller is about to make.
	return maxDaily - count - 1, nil
}
