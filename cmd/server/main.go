package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dandi-labs/dandi-dashboard/docs"
	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/dandi-labs/dandi-dashboard/internal/database"
	"github.com/dandi-labs/dandi-dashboard/internal/router"
	"github.com/dandi-labs/dandi-dashboard/internal/services"
	"github.com/dandi-labs/dandi-dashboard/internal/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging
	utils.ConfigureLogging(cfg.LogLevel, cfg.LogFormat)

	// Set Swagger base path dynamically
	if cfg.BasePath != "" {
		docs.SwaggerInfo.BasePath = cfg.BasePath
	}

	// Initialize Sentry
	if enabled, err := utils.InitSentry(cfg.Sentry); err != nil {
		logrus.Warnf("Failed to initialize Sentry: %v", err)
	} else if enabled {
		defer utils.FlushSentry()
	}

	// Initialize database connection
	db, err := database.InitDB(cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close(db)

	sseHub := services.NewSSEHub()

	// RabbitMQ is optional; events still reach SSE clients without it
	var rabbitMQService *services.RabbitMQService
	if cfg.RabbitMQ.URL != "" {
		rabbitMQService, err = services.NewRabbitMQService(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
		if err != nil {
			logrus.Warnf("Failed to initialize RabbitMQ: %v", err)
			rabbitMQService = nil
		} else {
			logrus.Info("RabbitMQ service initialized")
			defer rabbitMQService.Close()
		}
	}

	r, err := router.SetupRouter(cfg, db, sseHub, rabbitMQService)
	if err != nil {
		logrus.Fatalf("Failed to set up router: %v", err)
	}

	// Configure HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", cfg.Port)
		logrus.Infof("API Health Check: http://localhost:%s%s/api/v1/health", cfg.Port, cfg.BasePath)
		logrus.Infof("Swagger UI: http://localhost:%s%s/swagger/index.html", cfg.Port, cfg.BasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Event streams never go idle on their own
	sseHub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
		return
	}

	logrus.Info("Server exited properly")
}
