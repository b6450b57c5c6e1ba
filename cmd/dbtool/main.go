package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"tourist-route-service/internal/config"
	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/platform/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// dbtool prepares the document store for local runs: it creates the
// indexes the trust pipeline queries depend on and seeds the POI
// catalog from a JSON file.
func main() {
	logger, _ := zap.NewDevelopment()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := db.OpenMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	database := client.Database(cfg.MongoDatabase)

	logger.Info("creating indexes")
	if err := ensureIndexes(ctx, database); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	logger.Info("seeding poi catalog", zap.String("path", cfg.SeedPath))
	count, err := seedFromJSON(ctx, database, cfg.SeedPath)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete", zap.Int("pois", count))
}

func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	// Quota and duplicate lookups scan by user, type and creation time.
	_, err := database.Collection("submissions").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "poiId", Value: 1}, {Key: "type", Value: 1}, {Key: "isHidden", Value: 1}}},
	})
	if err != nil {
		return err
	}

	// Audit reads by user; the retention job scans by expiry.
	_, err = database.Collection("generated_routes").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "expiresAt", Value: 1}}},
	})
	return err
}

// seedFromJSON upserts the POIs from path into the catalog collection,
// so reseeding local data is idempotent.
func seedFromJSON(ctx context.Context, database *mongo.Database, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var pois []domain.POI
	if err := json.Unmarshal(raw, &pois); err != nil {
		return 0, err
	}

	coll := database.Collection("poi")
	opts := options.Replace().SetUpsert(true)
	for _, poi := range pois {
		if _, err := coll.ReplaceOne(ctx, bson.M{"_id": poi.ID}, poi, opts); err != nil {
			return 0, err
		}
	}

	return len(pois), nil
}
