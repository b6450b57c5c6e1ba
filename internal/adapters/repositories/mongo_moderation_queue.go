package repositories

import (
	"context"
	"fmt"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/platform/obs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Mongo-backed implementation of the ModerationQueue port.
type MongoModerationQueue struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoModerationQueue(db *mongo.Database, logger *zap.Logger) *MongoModerationQueue {
	return &MongoModerationQueue{coll: db.Collection("moderation_queue"), logger: logger}
}

func (q *MongoModerationQueue) Enqueue(ctx context.Context, entry domain.ModerationQueueEntry) (err error) {
	defer obs.Time(ctx, q.logger, "moderation.Enqueue")(&err)

	if _, err := q.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("enqueue moderation entry: insert: %w", err)
	}
	return nil
}
