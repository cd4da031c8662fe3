package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khareetaty/zone_alerting_system/internal/config"
	"github.com/khareetaty/zone_alerting_system/internal/escalation"
	"github.com/khareetaty/zone_alerting_system/internal/forecast"
	"github.com/khareetaty/zone_alerting_system/internal/geo"
	v1 "github.com/khareetaty/zone_alerting_system/internal/handler/http/v1"
	"github.com/khareetaty/zone_alerting_system/internal/hotspot"
	"github.com/khareetaty/zone_alerting_system/internal/metrics"
	"github.com/khareetaty/zone_alerting_system/internal/notify"
	"github.com/khareetaty/zone_alerting_system/internal/repository"
	"github.com/khareetaty/zone_alerting_system/internal/service"
	"github.com/khareetaty/zone_alerting_system/pkg/logger"
	"github.com/khareetaty/zone_alerting_system/pkg/postgres"
	redisclient "github.com/khareetaty/zone_alerting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/khareetaty/zone_alerting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Zone Alerting System API
// @version 1.0
// @description Zone-aware incident intelligence pipeline: geo resolution, hotspot detection, forecasting and tiered alerting.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// startScheduler runs pipeline cycles at the configured interval until the
// context is cancelled. The scheduler is just a trigger: RunCycle itself is
// idempotent and guarded against overlap.
func startScheduler(ctx context.Context, pipeline service.PipelineService, interval time.Duration, log *logrus.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				log.Info("Stopping pipeline scheduler.")
				return
			case <-ticker.C:
				if _, err := pipeline.RunCycle(ctx); err != nil {
					if errors.Is(err, service.ErrCycleInProgress) {
						log.Warn("Scheduled cycle skipped, another cycle is in progress")
						continue
					}
					log.WithError(err).Error("Scheduled pipeline cycle failed")
				}
			}
		}
	}()
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	metrics.Register()

	// Repositories
	zoneRepo := repository.NewZoneRepository(dbpool, redisClient)
	incidentRepo := repository.NewIncidentRepository(dbpool)
	resolutionRepo := repository.NewResolutionRepository(dbpool)
	hotspotRepo := repository.NewHotspotRepository(dbpool)
	forecastRepo := repository.NewForecastRepository(dbpool)
	alertRepo := repository.NewAlertRepository(dbpool)
	stateRepo := repository.NewEscalationStateRepository(dbpool)

	// Zone catalog: loaded and validated once at startup, read-only after.
	zones, err := zoneRepo.LoadZones(ctx)
	if err != nil {
		log.Fatalf("Failed to load zone catalog: %v", err)
	}
	catalog, err := geo.BuildCatalog(zones)
	if err != nil {
		log.Fatalf("Failed to build zone catalog: %v", err)
	}
	log.Infof("Zone catalog loaded with %d zones", catalog.Size())

	resolver := geo.NewResolver(catalog, cfg.BoundingBox, cfg.FallbackEnabled)
	detector := hotspot.NewDetector(cfg.EpsByLevel, cfg.MinPoints, cfg.RecencyHalfLife)
	forecaster := forecast.NewForecaster(cfg.MinHistoryBuckets)

	// Notification channels
	notifiers := map[string]notify.Notifier{
		"webhook": notify.NewWebhookNotifier(cfg, log),
		"opsfeed": notify.NewOpsFeedNotifier(redisClient),
	}

	engine := escalation.NewEngine(stateRepo, alertRepo, notifiers, cfg, log)
	cycleLock := service.NewRedisCycleLock(redisClient, cfg.CycleInterval)

	pipeline := service.NewPipelineService(
		catalog,
		resolver,
		detector,
		forecaster,
		engine,
		incidentRepo,
		resolutionRepo,
		hotspotRepo,
		forecastRepo,
		alertRepo,
		cycleLock,
		cfg,
		log,
	)

	startScheduler(ctx, pipeline, cfg.CycleInterval, log)

	handler := v1.NewHandler(pipeline, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
