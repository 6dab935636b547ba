package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/fixbay/booking-api/api/swagger"
	"github.com/fixbay/booking-api/internal/handler"
	"github.com/fixbay/booking-api/internal/middleware"
	"github.com/fixbay/booking-api/internal/repository"
	"github.com/fixbay/booking-api/internal/service"
	"github.com/fixbay/booking-api/pkg/cache"
	"github.com/fixbay/booking-api/pkg/config"
	"github.com/fixbay/booking-api/pkg/database"
	"github.com/fixbay/booking-api/pkg/logger"
	corsmiddleware "github.com/fixbay/booking-api/pkg/middleware/cors"
	reqidmiddleware "github.com/fixbay/booking-api/pkg/middleware/requestid"
)

// @title FixBay Booking API
// @version 0.1.0
// @description Slot availability and recommendation service for workshop appointments
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("postgres connect failed", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The catalog cache is an accelerator, not a dependency.
		logr.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	}

	metricsSvc := service.NewMetricsService()

	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, redisClient != nil)

	appointmentRepo := repository.NewAppointmentRepository(db, metricsSvc.ObserveDBQuery)
	catalogRepo := repository.NewCatalogRepository(db, metricsSvc.ObserveDBQuery)

	catalogSvc := service.NewCatalogService(catalogRepo, cacheSvc, cfg.Catalog.CacheTTL, logr)
	availabilitySvc, err := service.NewAvailabilityService(appointmentRepo, catalogSvc, metricsSvc, cfg.Workshop, logr)
	if err != nil {
		logr.Sugar().Fatalw("availability service init failed", "error", err)
	}

	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc, cfg.Export.Enabled)
	planHandler := handler.NewPlanHandler(catalogSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db.DB)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/availability/day", availabilityHandler.Day)
		api.GET("/availability/day/export", availabilityHandler.Export)
		api.POST("/availability/recommendations", availabilityHandler.Recommend)
		api.GET("/plans", planHandler.List)
		api.GET("/plans/:id", planHandler.Get)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "capacity", cfg.Workshop.Capacity)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
