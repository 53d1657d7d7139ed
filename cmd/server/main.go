package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pricingdesk/pricing-console/internal/api"
	"github.com/pricingdesk/pricing-console/internal/cache"
	"github.com/pricingdesk/pricing-console/internal/config"
	"github.com/pricingdesk/pricing-console/internal/jobs"
	"github.com/pricingdesk/pricing-console/internal/repository/postgres"
	"github.com/pricingdesk/pricing-console/internal/service"
	"github.com/pricingdesk/pricing-console/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.LogLevel)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize warehouse connection
	db, err := postgres.NewDB(&cfg.Warehouse)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to connect to warehouse")
	}
	defer db.Close()

	// Initialize cache
	var cacheImpl cache.Cache
	if cfg.Cache.Enabled {
		cacheImpl, err = cache.NewRedis(cfg.Cache)
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Redis unavailable, running without cache")
			cacheImpl = cache.NewNoop()
		}
	} else {
		cacheImpl = cache.NewNoop()
	}

	// Initialize repositories
	catloteRepo := postgres.NewCatloteRepository(db)
	buildupRepo := postgres.NewBuildupRepository(db)
	fxRepo := postgres.NewFxRepository(db)
	ccRepo := postgres.NewCommandCenterRepository(db)

	// Initialize services
	runner := jobs.NewClient(cfg.Jobs)
	services := &api.Services{
		Catlote:  service.NewCatloteService(catloteRepo),
		Buildup:  service.NewBuildupService(buildupRepo, fxRepo),
		Approval: service.NewApprovalService(runner),
		CommandCenter: service.NewCommandCenterService(
			ccRepo, cacheImpl, time.Duration(cfg.Cache.CommandCenterTTLSec)*time.Second),
	}

	// Initialize HTTP server
	router := api.NewRouter(services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
