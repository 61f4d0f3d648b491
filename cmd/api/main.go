package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projecthub/projecthub-api/internal/api"
	"github.com/projecthub/projecthub-api/internal/core/service"
	"github.com/projecthub/projecthub-api/internal/infrastructure/config"
	mongodb "github.com/projecthub/projecthub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/projecthub/projecthub-api/internal/infrastructure/db/redis"
	"github.com/projecthub/projecthub-api/internal/infrastructure/queue"
	"github.com/projecthub/projecthub-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Signing configuration is validated before anything is served: a
	// missing or short secret halts the process here, never per-request.
	if err := cfg.Jwt.Validate(); err != nil {
		log.Fatalf("invalid signing configuration: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := ensureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	// Activity pipeline: sharded workers persist feed entries off the
	// request path. Lifecycle follows the process context.
	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, logg)
	dispatcher := queue.NewDispatcher(0, activityService, logg)
	dispatcher.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, dispatcher, logg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logg.Fatal().Err(err).Msg("server start failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logg.Info().Str("signal", sig.String()).Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("server shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewProjectRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewTaskRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewActivityRepository(db).EnsureIndexes(ctx)
}
