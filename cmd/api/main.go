package main

// @title SafeRoute Service API
// @version 1.0.0
// @description Risk-aware route suggestion service. Scores a fixed menu of route options against a catalog of historical incidents, weighted by time of day and requester demographics, and suggests the safest one together with an incident heatmap.
// @description
// @description Capabilities:
// @description - Safest-route suggestion from a traveler origin
// @description - Context-weighted incident heatmap
// @description - Incident catalog statistics
// @description - Panic alert intake feeding an async notification pipeline

// @contact.name API Support
// @contact.email support@saferoute-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/saferoute-service/docs"
	"github.com/saferoute-service/internal/config"
	httpDelivery "github.com/saferoute-service/internal/delivery/http"
	"github.com/saferoute-service/internal/delivery/http/handler"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/logger"
	"github.com/saferoute-service/internal/repository/cache"
	"github.com/saferoute-service/internal/repository/postgres"
	redisRepo "github.com/saferoute-service/internal/repository/redis"
	"github.com/saferoute-service/internal/repository/synthetic"
	"github.com/saferoute-service/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting SafeRoute Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 4. Build the incident catalog. PostgreSQL is only touched when the
	// recorded store is the configured source.
	var incidentRepo repository.IncidentRepository
	switch cfg.Catalog.Source {
	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		incidentRepo = postgres.NewIncidentRepository(db, log)
	default:
		incidentRepo = synthetic.NewIncidentRepository(&cfg.Catalog, log)
	}

	incidents, err := incidentRepo.GetAllIncidents(ctx)
	if err != nil {
		log.Fatal("Failed to load incident catalog", zap.Error(err))
	}
	catalog := domain.NewIncidentCatalog(incidents)
	log.Info("Incident catalog ready", zap.Int("size", catalog.Size()))

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize use cases
	rng := usecase.NewLockedRand(0)

	options := make([]domain.RouteOption, 0, len(cfg.Route.Options))
	for _, o := range cfg.Route.Options {
		options = append(options, domain.RouteOption{
			Name:    o.Name,
			EndLat:  o.EndLat,
			EndLon:  o.EndLon,
			EtaMin:  o.EtaMin,
			EtaMax:  o.EtaMax,
			Details: o.Details,
		})
	}

	synthesizer := usecase.NewRouteSynthesizer(cfg.Route.InteriorPoints, rng)
	scorer := usecase.NewRiskScorer(catalog)
	heatmapUC := usecase.NewHeatmapUseCase(catalog, cacheRepo, cfg.Cache.HeatmapCacheTTL, log)
	statsUC := usecase.NewStatsUseCase(catalog, cacheRepo, cfg.Cache.StatsCacheTTL, log)
	alertUC := usecase.NewAlertUseCase(streamRepo, log)

	routeUC, err := usecase.NewRouteUseCase(synthesizer, scorer, heatmapUC, options, rng, log)
	if err != nil {
		log.Fatal("Failed to initialize route use case", zap.Error(err))
	}

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	routeHandler := handler.NewRouteHandler(routeUC, log)
	heatmapHandler := handler.NewHeatmapHandler(heatmapUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	alertHandler := handler.NewAlertHandler(alertUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		routeHandler,
		heatmapHandler,
		statsHandler,
		alertHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
