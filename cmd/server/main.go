package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/giftidea/gift-catalog-api/internal/api"
	"github.com/giftidea/gift-catalog-api/internal/core/service"
	"github.com/giftidea/gift-catalog-api/internal/infrastructure/config"
	mongostore "github.com/giftidea/gift-catalog-api/internal/infrastructure/db/mongo"
	redisstore "github.com/giftidea/gift-catalog-api/internal/infrastructure/db/redis"
	"github.com/giftidea/gift-catalog-api/internal/infrastructure/seed"
	"github.com/giftidea/gift-catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Gift Catalog API
// @version         1.0
// @description     Catalog, cart, and wishlist backend with token-based authentication.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	identityRepo := mongostore.NewIdentityRepository(db)
	if err := identityRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	// --- Redis ---
	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Sample data ---
	if cfg.SeedData {
		hasher := service.NewBcryptHasher(cfg.BcryptCost)
		if err := seed.Run(ctx, mongostore.NewGiftRepository(db), identityRepo, hasher, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	// --- HTTP server ---
	e := api.NewRouter(cfg, db, rdb, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
