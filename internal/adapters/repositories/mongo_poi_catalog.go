package repositories

import (
	"context"
	"errors"
	"fmt"

	"tourist-route-service/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Mongo-backed implementation of the POICatalog port.
type MongoPOICatalog struct {
	coll *mongo.Collection
}

func NewMongoPOICatalog(db *mongo.Database) *MongoPOICatalog {
	return &MongoPOICatalog{coll: db.Collection("poi")}
}

// Return all POIs in the catalog.
func (c *MongoPOICatalog) ListPOIs(ctx context.Context) ([]domain.POI, error) {
	cursor, err := c.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list pois: query poi collection: %w", err)
	}
	defer cursor.Close(ctx)

	pois := make([]domain.POI, 0, 64)
	if err := cursor.All(ctx, &pois); err != nil {
		return nil, fmt.Errorf("list pois: decode documents: %w", err)
	}

	return pois, nil
}

func (c *MongoPOICatalog) GetPOI(ctx context.Context, id string) (*domain.POI, error) {
	var poi domain.POI
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&poi)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get poi %q: %w", id, err)
	}

	return &poi, nil
}
