package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourist-route-service/internal/adapters/guard"
	"tourist-route-service/internal/adapters/repositories"
	"tourist-route-service/internal/api"
	"tourist-route-service/internal/config"
	"tourist-route-service/internal/platform/db"
	"tourist-route-service/internal/services"
	"tourist-route-service/internal/workers"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Buffered hand-off between the submission write path and the
// moderation worker.
const moderationBuffer = 256

// main is the application composition root.
// It wires concrete adapters (Mongo, Redis) behind ports and starts the
// HTTP server plus the moderation worker.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Plain stderr: the logger needs the config first.
		os.Stderr.WriteString("configuration error: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	contentCfg, err := config.LoadContentConfig(cfg.ContentPath)
	if err != nil {
		logger.Fatal("content config error", zap.Error(err))
	}

	ctx := context.Background()

	mongoClient, err := db.OpenMongo(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()
	database := mongoClient.Database(cfg.MongoDatabase)

	redisClient, err := db.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal("redis connection failed", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()

	// Adapters behind ports.
	catalog := repositories.NewMongoPOICatalog(database)
	routeStore := repositories.NewMongoRouteStore(database, logger)
	subStore := repositories.NewMongoSubmissionStore(database, logger)
	modQueue := repositories.NewMongoModerationQueue(database, logger)
	dupReserver := guard.NewRedisDuplicateReserver(redisClient)

	// Services.
	dwell := services.NewDwellEstimator(contentCfg)
	planner := services.NewPlanner(dwell)
	routeService := services.NewRouteService(catalog, routeStore, planner, logger)
	quotaGuard := services.NewQuotaGuard(subStore, logger)
	publisher := workers.NewChannelPublisher(moderationBuffer, logger)
	submissionService := services.NewSubmissionService(catalog, subStore, dupReserver, quotaGuard, publisher, logger)

	// Moderation runs off the request path; its failures never surface
	// to content authors.
	moderator := services.NewModerator(contentCfg)
	worker := workers.NewModerationWorker(publisher.Events(), subStore, modQueue, moderator, logger)
	workerCtx, stopWorker := context.WithCancel(ctx)
	go worker.Run(workerCtx)

	router := api.NewRouter(catalog, routeService, quotaGuard, submissionService, cfg.JWTSecret, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	stopWorker()
	logger.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		os.Stderr.WriteString("logger init failed: " + err.Error() + "\n")
		os.Exit(1)
	}
	return logger
}
