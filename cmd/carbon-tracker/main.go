package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lumumba11/carbon-tracker-dashboard/internal/api"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/api/handlers"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/service"
	"github.com/lumumba11/carbon-tracker-dashboard/internal/session"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/config"
	"github.com/lumumba11/carbon-tracker-dashboard/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Carbon Tracking service")

	// Initialize services
	aggService := service.NewAggregationService(appLogger)
	insightService := service.NewInsightService(aggService, appLogger)
	recService := service.NewRecommendationService(appLogger)
	achievementService := service.NewAchievementService(aggService, appLogger)

	// Session state is purely in memory; every session dies with the
	// process.
	manager := session.NewManager(cfg.Tracker, aggService, appLogger)

	// Initialize handlers
	logHandler := handlers.NewLogHandler(appLogger)
	dashboardHandler := handlers.NewDashboardHandler(aggService, insightService, recService, achievementService, appLogger)
	chatHandler := handlers.NewChatHandler(appLogger)
	sessionHandler := handlers.NewSessionHandler(manager, appLogger)

	// Setup router
	app := api.SetupRouter(logHandler, dashboardHandler, chatHandler, sessionHandler, manager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
	manager.Shutdown()
}
