package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrifarm/farm-management-api/internal/api"
	"github.com/agrifarm/farm-management-api/internal/api/handler"
	"github.com/agrifarm/farm-management-api/internal/api/middleware"
	"github.com/agrifarm/farm-management-api/internal/core/service"
	"github.com/agrifarm/farm-management-api/internal/infrastructure/config"
	mongodb "github.com/agrifarm/farm-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/agrifarm/farm-management-api/internal/infrastructure/db/redis"
	"github.com/agrifarm/farm-management-api/internal/infrastructure/queue"
	"github.com/agrifarm/farm-management-api/internal/token"
	"github.com/agrifarm/farm-management-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level: cfg.LogLevel,
		Env:   cfg.Env,
	})

	tokens, err := token.New(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build token service")
	}

	db, disconnect, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		if err := disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close")
		}
	}()

	// Repositories.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	fieldRepo := mongodb.NewFieldRepository(db)
	cropRepo := mongodb.NewCropRepository(db)
	plantingRepo := mongodb.NewPlantingRepository(db)
	harvestRepo := mongodb.NewHarvestRepository(db)
	purchaseRepo := mongodb.NewPurchaseRepository(db)
	readingRepo := mongodb.NewReadingRepository(db)

	// Services.
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	fieldService := service.NewFieldService(fieldRepo)
	cropService := service.NewCropService(cropRepo)
	plantingService := service.NewPlantingService(plantingRepo)
	harvestService := service.NewHarvestService(harvestRepo)
	purchaseService := service.NewPurchaseService(purchaseRepo)
	monitoringService := service.NewMonitoringService(readingRepo, redisdb.NewReadingDedup(rdb), log)

	// Background reading pipeline.
	dispatcher := queue.NewDispatcher(cfg.IngestWorkers, monitoringService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Tokens:     tokens,
		Policy:     middleware.DefaultPolicy(),
		LoginLimit: middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window),
		CORSOrigin: cfg.CORSOrigin,
		Log:        log,
		Auth:       handler.NewAuthHandler(authService),
		Users:      handler.NewUserHandler(userService),
		Fields:     handler.NewFieldHandler(fieldService),
		Crops:      handler.NewCropHandler(cropService),
		Plantings:  handler.NewPlantingHandler(plantingService),
		Harvests:   handler.NewHarvestHandler(harvestService),
		Purchases:  handler.NewPurchaseHandler(purchaseService),
		Monitoring: handler.NewMonitoringHandler(monitoringService, dispatcher),
		Dashboards: handler.NewDashboardHandler(harvestService, monitoringService, cropService, plantingService),
		Health:     handler.NewHealthHandler(),
		Readiness:  handler.NewReadinessHandler(db, rdb),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown")
	}
	log.Info().Msg("server stopped")
}
