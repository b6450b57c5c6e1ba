package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tourist-route-service/internal/adapters/memory"
	"tourist-route-service/internal/domain"
)

func seedSubmissions(store *memory.SubmissionStore, userID string, ct domain.ContentType, createdAt time.Time, poiIDs ...string) {
	for _, poiID := range poiIDs {
		store.Subs = append(store.Subs, domain.ContentSubmission{
			ID:        "seed-" + poiID,
			Type:      ct,
			UserID:    userID,
			POIID:     poiID,
			CreatedAt: createdAt,
		})
	}
}

func TestQuotaGuardFreshUser(t *testing.T) {
	guard := NewQuotaGuard(&memory.SubmissionStore{}, zap.NewNop())

	remaining, err := guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "poi-1")
	require.NoError(t, err)
	assert.Equal(t, 9, remaining)

	remaining, err = guard.Check(context.Background(), "user-1", domain.ContentTypeQuestion, "poi-1")
	require.NoError(t, err)
	assert.Equal(t, 4, remaining)
}

func TestQuotaGuardReviewCapExceeded(t *testing.T) {
	store := &memory.SubmissionStore{}
	seedSubmissions(store, "user-1", domain.ContentTypeReview, time.Now().Add(-time.Hour),
		"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10")

	guard := NewQuotaGuard(store, zap.NewNop())
	_, err := guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "p11")
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestQuotaGuardOldSubmissionsOutsideWindow(t *testing.T) {
	store := &memory.SubmissionStore{}
	seedSubmissions(store, "user-1", domain.ContentTypeReview, time.Now().Add(-25*time.Hour),
		"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10")

	guard := NewQuotaGuard(store, zap.NewNop())
	remaining, err := guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "p1")
	require.NoError(t, err)
	assert.Equal(t, 9, remaining)
}

func TestQuotaGuardDuplicateDespiteRemainingQuota(t *testing.T) {
	store := &memory.SubmissionStore{}
	seedSubmissions(store, "user-1", domain.ContentTypeQuestion, time.Now().Add(-time.Hour), "poi-1")

	guard := NewQuotaGuard(store, zap.NewNop())

	_, err := guard.Check(context.Background(), "user-1", domain.ContentTypeQuestion, "poi-1")
	assert.ErrorIs(t, err, domain.ErrDuplicateContent)

	// Other POIs and the other content type stay open.
	_, err = guard.Check(context.Background(), "user-1", domain.ContentTypeQuestion, "poi-2")
	assert.NoError(t, err)
	_, err = guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "poi-1")
	assert.NoError(t, err)
}

func TestQuotaGuardCountsPerUser(t *testing.T) {
	store := &memory.SubmissionStore{}
	seedSubmissions(store, "other-user", domain.ContentTypeReview, time.Now().Add(-time.Hour),
		"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8", "p9", "p10")

	guard := NewQuotaGuard(store, zap.NewNop())
	remaining, err := guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "p1")
	require.NoError(t, err)
	assert.Equal(t, 9, remaining)
}

func TestQuotaGuardInvalidContentType(t *testing.T) {
	guard := NewQuotaGuard(&memory.SubmissionStore{}, zap.NewNop())
	_, err := guard.Check(context.Background(), "user-1", domain.ContentType("comment"), "poi-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuotaGuardStoreError(t *testing.T) {
	storeErr := errors.New("backend down")
	guard := NewQuotaGuard(&memory.SubmissionStore{Err: storeErr}, zap.NewNop())

	_, err := guard.Check(context.Background(), "user-1", domain.ContentTypeReview, "poi-1")
	assert.ErrorIs(t, err, storeErr)
}
