package repositories

import (
	"context"
	"fmt"
	"time"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/platform/obs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go.uber.org/zap"
)

// Mongo-backed implementation of the SubmissionStore port. Reviews and
// questions share one collection, discriminated by the type field.
type MongoSubmissionStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoSubmissionStore(db *mongo.Database, logger *zap.Logger) *MongoSubmissionStore {
	return &MongoSubmissionStore{coll: db.Collection("submissions"), logger: logger}
}

func (s *MongoSubmissionStore) CountRecent(ctx context.Context, userID string, ct domain.ContentType, since time.Time) (_ int, err error) {
	defer obs.Time(ctx, s.logger, "submissions.CountRecent")(&err)

	n, err := s.coll.CountDocuments(ctx, bson.M{
		"userId":    userID,
		"type":      ct,
		"createdAt": bson.M{"$gt": since},
	})
	if err != nil {
		return 0, fmt.Errorf("count recent submissions: %w", err)
	}

	return int(n), nil
}

func (s *MongoSubmissionStore) HasRecentForPOI(ctx context.Context, userID string, ct domain.ContentType, poiID string, since time.Time) (_ bool, err error) {
	defer obs.Time(ctx, s.logger, "submissions.HasRecentForPOI")(&err)

	n, err := s.coll.CountDocuments(ctx, bson.M{
		"userId":    userID,
		"type":      ct,
		"poiId":     poiID,
		"createdAt": bson.M{"$gt": since},
	}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("duplicate submission lookup: %w", err)
	}

	return n > 0, nil
}

func (s *MongoSubmissionStore) AddSubmission(ctx context.Context, sub domain.ContentSubmission) (err error) {
	defer obs.Time(ctx, s.logger, "submissions.Add")(&err)

	if _, err := s.coll.InsertOne(ctx, sub); err != nil {
		return fmt.Errorf("add submission: insert: %w", err)
	}
	return nil
}

func (s *MongoSubmissionStore) ListVisibleForPOI(ctx context.Context, poiID string, ct domain.ContentType) (_ []domain.ContentSubmission, err error) {
	defer obs.Time(ctx, s.logger, "submissions.ListVisibleForPOI")(&err)

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{
		"poiId":    poiID,
		"type":     ct,
		"isHidden": false,
	}, opts)
	if err != nil {
		return nil, fmt.Errorf("list visible submissions: query: %w", err)
	}
	defer cursor.Close(ctx)

	subs := make([]domain.ContentSubmission, 0, 16)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, fmt.Errorf("list visible submissions: decode: %w", err)
	}

	return subs, nil
}

func (s *MongoSubmissionStore) ApplyModeration(ctx context.Context, id string, res domain.ModerationResult) (err error) {
	defer obs.Time(ctx, s.logger, "submissions.ApplyModeration")(&err)

	update := bson.M{"$set": bson.M{
		"reported":        true,
		"moderationFlags": res.Flags,
		"isHidden":        res.ShouldHide,
	}}
	result, err := s.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("apply moderation: update %q: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("apply moderation: submission %q: %w", id, domain.ErrNotFound)
	}

	return nil
}
