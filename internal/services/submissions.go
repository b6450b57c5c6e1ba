package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionService owns the user-facing content write path: quota gate,
// atomic duplicate reservation, store write, and the fire-and-forget
// hand-off to moderation.
type SubmissionService struct {
	catalog    ports.POICatalog
	subs       ports.SubmissionStore
	dups       ports.DuplicateReserver
	quota      *QuotaGuard
	moderation ports.ModerationPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewSubmissionService(
	catalog ports.POICatalog,
	subs ports.SubmissionStore,
	dups ports.DuplicateReserver,
	quota *QuotaGuard,
	moderation ports.ModerationPublisher,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		catalog:    catalog,
		subs:       subs,
		dups:       dups,
		quota:      quota,
		moderation: moderation,
		logger:     logger,
		now:        time.Now,
	}
}

// Create persists a new review or question after the trust checks pass.
// Moderation runs asynchronously after the write; its outcome never
// blocks or fails creation.
func (s *SubmissionService) Create(ctx context.Context, userID string, ct domain.ContentType, poiID, text string) (domain.ContentSubmission, error) {
	if !ct.Valid() || strings.TrimSpace(text) == "" {
		return domain.ContentSubmission{}, domain.ErrInvalidInput
	}

	if _, err := s.catalog.GetPOI(ctx, poiID); err != nil {
		return domain.ContentSubmission{}, fmt.Errorf("create submission: look up poi %q: %w", poiID, err)
	}

	if _, err := s.quota.Check(ctx, userID, ct, poiID); err != nil {
		return domain.ContentSubmission{}, err
	}

	// Single check-and-set reservation: of two concurrent submissions for
	// the same (user, type, poi) at most one gets past this point.
	ok, err := s.dups.Reserve(ctx, userID, ct, poiID, quotaWindow)
	if err != nil {
		return domain.ContentSubmission{}, fmt.Errorf("create submission: reserve duplicate slot: %w", err)
	}
	if !ok {
		return domain.ContentSubmission{}, domain.ErrDuplicateContent
	}

	sub := domain.ContentSubmission{
		ID:        uuid.NewString(),
		Type:      ct,
		UserID:    userID,
		POIID:     poiID,
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.subs.AddSubmission(ctx, sub); err != nil {
		// Free the reservation so the user can retry after a store error.
		if relErr := s.dups.Release(ctx, userID, ct, poiID); relErr != nil {
			s.logger.Warn("release duplicate reservation failed",
				zap.String("userId", userID),
				zap.String("poiId", poiID),
				zap.Error(relErr))
		}
		return domain.ContentSubmission{}, fmt.Errorf("create submission: store write: %w", err)
	}

	s.moderation.Publish(ports.ModerationEvent{
		ContentType: ct,
		ContentID:   sub.ID,
		POIID:       poiID,
		UserID:      userID,
		Text:        text,
	})

	s.logger.Info("submission created",
		zap.String("id", sub.ID),
		zap.String("userId", userID),
		zap.String("poiId", poiID),
		zap.String("contentType", string(ct)))

	return sub, nil
}

// ListForPOI returns the visible submissions of one type for a POI.
func (s *SubmissionService) ListForPOI(ctx context.Context, poiID string, ct domain.ContentType) ([]domain.ContentSubmission, error) {
	if !ct.Valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.catalog.GetPOI(ctx, poiID); err != nil {
		return nil, fmt.Errorf("list submissions: look up poi %q: %w", poiID, err)
	}

	subs, err := s.subs.ListVisibleForPOI(ctx, poiID, ct)
	if err != nil {
		return nil, fmt.Errorf("list submissions: query visible for poi %q: %w", poiID, err)
	}
	return subs, nil
}
