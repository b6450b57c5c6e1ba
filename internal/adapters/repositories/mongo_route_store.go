package repositories

import (
	"context"
	"fmt"

	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/platform/obs"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Mongo-backed implementation of the RouteStore port. Append-only; the
// expiry metadata on each record is reaped by an external housekeeping
// job, not here.
type MongoRouteStore struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoRouteStore(db *mongo.Database, logger *zap.Logger) *MongoRouteStore {
	return &MongoRouteStore{coll: db.Collection("generated_routes"), logger: logger}
}

func (s *MongoRouteStore) AddGeneratedRoute(ctx context.Context, rec domain.GeneratedRouteRecord) (err error) {
	defer obs.Time(ctx, s.logger, "routes.AddGeneratedRoute")(&err)

	if _, err := s.coll.InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("add generated route: insert: %w", err)
	}
	return nil
}
