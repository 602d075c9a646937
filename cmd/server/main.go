// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"opsdash/internal/analytics"
	"opsdash/internal/api"
	"opsdash/internal/cache"
	"opsdash/internal/config"
	"opsdash/internal/service"
	"opsdash/internal/snapshot"
	"opsdash/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize dashboard cache (noop unless enabled)
	dashboardCache, err := cache.NewDashboardCache(cfg.Cache)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("Dashboard cache unavailable, continuing without cache")
		dashboardCache = cache.NewNoopDashboardCache()
	}

	// Initialize snapshot source and service
	source := snapshot.NewFileSource(cfg.App.DataDir)
	analyzer := analytics.NewAnalyzer(analytics.Thresholds{
		ABCAShare:         cfg.Analytics.ABCAShare,
		ABCBShare:         cfg.Analytics.ABCBShare,
		WarningMultiplier: cfg.Analytics.WarningMultiplier,
		InactivityDays:    cfg.Analytics.InactivityDays,
		SLAImminentDays:   cfg.Analytics.SLAImminentDays,
		BacklogAlertMin:   cfg.Analytics.BacklogAlertMin,
		BacklogHighMin:    cfg.Analytics.BacklogHighMin,
	})
	dashboardService := service.NewDashboardService(source, analyzer, dashboardCache)

	// Initialize HTTP server
	router := api.NewRouter(dashboardService, cfg.Server.AllowedOrigins)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}
