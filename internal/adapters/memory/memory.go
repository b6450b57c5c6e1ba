// Package memory provides in-memory implementations of the storage and
// messaging ports for tests, mirroring the store contracts without a
// live backend.
package memory

import (
	"context"
	"sync"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/ports"
)

// In-memory POICatalog over a fixed slice.
type POICatalog struct {
	POIs []domain.POI
}

func (c *POICatalog) ListPOIs(ctx context.Context) ([]domain.POI, error) {
	out := make([]domain.POI, len(c.POIs))
	copy(out, c.POIs)
	return out, nil
}

func (c *POICatalog) GetPOI(ctx context.Context, id string) (*domain.POI, error) {
	for _, poi := range c.POIs {
		if poi.ID == id {
			p := poi
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// In-memory SubmissionStore.
type SubmissionStore struct {
	mu   sync.Mutex
	Subs []domain.ContentSubmission
	// Err, when set, is returned by every operation. AddErr fails only
	// the write path.
	Err    error
	AddErr error
}

func (s *SubmissionStore) CountRecent(ctx context.Context, userID string, ct domain.ContentType, since time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}

	count := 0
	for _, sub := range s.Subs {
		if sub.UserID == userID && sub.Type == ct && sub.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

func (s *SubmissionStore) HasRecentForPOI(ctx context.Context, userID string, ct domain.ContentType, poiID string, since time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}

	for _, sub := range s.Subs {
		if sub.UserID == userID && sub.Type == ct && sub.POIID == poiID && sub.CreatedAt.After(since) {
			return true, nil
		}
	}
	return false, nil
}

func (s *SubmissionStore) AddSubmission(ctx context.Context, sub domain.ContentSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.AddErr != nil {
		return s.AddErr
	}

	s.Subs = append(s.Subs, sub)
	return nil
}

func (s *SubmissionStore) ListVisibleForPOI(ctx context.Context, poiID string, ct domain.ContentType) ([]domain.ContentSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := []domain.ContentSubmission{}
	for _, sub := range s.Subs {
		if sub.POIID == poiID && sub.Type == ct && !sub.IsHidden {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *SubmissionStore) ApplyModeration(ctx context.Context, id string, res domain.ModerationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	for i := range s.Subs {
		if s.Subs[i].ID == id {
			s.Subs[i].Reported = true
			s.Subs[i].ModerationFlags = res.Flags
			s.Subs[i].IsHidden = res.ShouldHide
			return nil
		}
	}
	return domain.ErrNotFound
}

// Get returns a copy of the stored submission by id.
func (s *SubmissionStore) Get(id string) (domain.ContentSubmission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.Subs {
		if sub.ID == id {
			return sub, true
		}
	}
	return domain.ContentSubmission{}, false
}

// In-memory RouteStore.
type RouteStore struct {
	mu      sync.Mutex
	Records []domain.GeneratedRouteRecord
	Err     error
}

func (s *RouteStore) AddGeneratedRoute(ctx context.Context, rec domain.GeneratedRouteRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}

	s.Records = append(s.Records, rec)
	return nil
}

// In-memory ModerationQueue.
type ModerationQueue struct {
	mu      sync.Mutex
	Entries []domain.ModerationQueueEntry
}

func (q *ModerationQueue) Enqueue(ctx context.Context, entry domain.ModerationQueueEntry) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.Entries = append(q.Entries, entry)
	return nil
}

// Size returns the current number of queue entries.
func (q *ModerationQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.Entries)
}

// In-memory DuplicateReserver keyed like the redis adapter.
type DuplicateReserver struct {
	mu       sync.Mutex
	reserved map[string]struct{}
}

func (r *DuplicateReserver) Reserve(ctx context.Context, userID string, ct domain.ContentType, poiID string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reserved == nil {
		r.reserved = map[string]struct{}{}
	}
	key := userID + "|" + string(ct) + "|" + poiID
	if _, ok := r.reserved[key]; ok {
		return false, nil
	}
	r.reserved[key] = struct{}{}
	return true, nil
}

func (r *DuplicateReserver) Release(ctx context.Context, userID string, ct domain.ContentType, poiID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.reserved, userID+"|"+string(ct)+"|"+poiID)
	return nil
}

// CollectPublisher records published moderation events for assertions.
type CollectPublisher struct {
	mu     sync.Mutex
	Events []ports.ModerationEvent
}

func (p *CollectPublisher) Publish(ev ports.ModerationEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, ev)
}
