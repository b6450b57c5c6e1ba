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

type submissionFixture struct {
	catalog *memory.POICatalog
	store   *memory.SubmissionStore
	dups    *memory.DuplicateReserver
	events  *memory.CollectPublisher
	service *SubmissionService
}

func newSubmissionFixture() *submissionFixture {
	catalog := &memory.POICatalog{POIs: []domain.POI{
		{ID: "poi-1", Title: "Cathedral", Categories: []string{"church"}},
	}}
	store := &memory.SubmissionStore{}
	dups := &memory.DuplicateReserver{}
	events := &memory.CollectPublisher{}
	logger := zap.NewNop()

	return &submissionFixture{
		catalog: catalog,
		store:   store,
		dups:    dups,
		events:  events,
		service: NewSubmissionService(catalog, store, dups, NewQuotaGuard(store, logger), events, logger),
	}
}

func TestCreateSubmission(t *testing.T) {
	fx := newSubmissionFixture()

	sub, err := fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "wonderful frescoes")
	require.NoError(t, err)
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, domain.ContentTypeReview, sub.Type)
	assert.False(t, sub.IsHidden)
	assert.WithinDuration(t, time.Now(), sub.CreatedAt, time.Minute)

	stored, ok := fx.store.Get(sub.ID)
	require.True(t, ok)
	assert.Equal(t, "wonderful frescoes", stored.Text)

	require.Len(t, fx.events.Events, 1)
	assert.Equal(t, sub.ID, fx.events.Events[0].ContentID)
	assert.Equal(t, "poi-1", fx.events.Events[0].POIID)
}

func TestCreateSubmissionInvalidInput(t *testing.T) {
	fx := newSubmissionFixture()

	_, err := fx.service.Create(context.Background(), "user-1", domain.ContentType("comment"), "poi-1", "text")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateSubmissionUnknownPOI(t *testing.T) {
	fx := newSubmissionFixture()

	_, err := fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "missing", "text")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateSubmissionDuplicateFromStore(t *testing.T) {
	fx := newSubmissionFixture()

	_, err := fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "first visit")
	require.NoError(t, err)

	_, err = fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "second visit")
	assert.ErrorIs(t, err, domain.ErrDuplicateContent)
	assert.Len(t, fx.store.Subs, 1)
}

func TestCreateSubmissionDuplicateFromReservation(t *testing.T) {
	fx := newSubmissionFixture()

	// A concurrent request already holds the reservation but has not yet
	// written, so the store-side duplicate check cannot see it.
	ok, err := fx.dups.Reserve(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "raced")
	assert.ErrorIs(t, err, domain.ErrDuplicateContent)
	assert.Empty(t, fx.store.Subs)
	assert.Empty(t, fx.events.Events)
}

func TestCreateSubmissionStoreErrorReleasesReservation(t *testing.T) {
	fx := newSubmissionFixture()
	fx.store.AddErr = errors.New("write failed")

	_, err := fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "text")
	require.Error(t, err)
	assert.Empty(t, fx.events.Events)

	// The reservation was released, so a retry gets past the reserver.
	fx.store.AddErr = nil
	_, err = fx.service.Create(context.Background(), "user-1", domain.ContentTypeReview, "poi-1", "retry")
	assert.NoError(t, err)
}

func TestListForPOI(t *testing.T) {
	fx := newSubmissionFixture()
	fx.store.Subs = []domain.ContentSubmission{
		{ID: "s1", Type: domain.ContentTypeReview, POIID: "poi-1", Text: "visible"},
		{ID: "s2", Type: domain.ContentTypeReview, POIID: "poi-1", Text: "hidden", IsHidden: true},
		{ID: "s3", Type: domain.ContentTypeQuestion, POIID: "poi-1", Text: "a question"},
	}

	subs, err := fx.service.ListForPOI(context.Background(), "poi-1", domain.ContentTypeReview)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "s1", subs[0].ID)

	_, err = fx.service.ListForPOI(context.Background(), "poi-1", domain.ContentType("comment"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = fx.service.ListForPOI(context.Background(), "missing", domain.ContentTypeReview)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
