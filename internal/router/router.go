package router

import (
	"time"

	"github.com/dandi-labs/dandi-dashboard/internal/config"
	"github.com/dandi-labs/dandi-dashboard/internal/database/repository"
	"github.com/dandi-labs/dandi-dashboard/internal/handlers"
	"github.com/dandi-labs/dandi-dashboard/internal/middleware"
	"github.com/dandi-labs/dandi-dashboard/internal/services"
	"github.com/dandi-labs/dandi-dashboard/internal/services/api_key"
	"github.com/dandi-labs/dandi-dashboard/internal/services/excel"
	"github.com/dandi-labs/dandi-dashboard/internal/services/playground"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin router with the dashboard, validation and playground routes.
// rabbitMQService may be nil when no broker is configured.
func SetupRouter(cfg *config.Config, db *gorm.DB, sseHub *services.SSEHub, rabbitMQService *services.RabbitMQService) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSAllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Create services
	apiKeyRepo := repository.NewAPIKeyRepository(db)
	sinks := []services.EventSink{sseHub}
	if rabbitMQService != nil {
		sinks = append(sinks, rabbitMQService)
	}
	apiKeyService := api_key.NewService(apiKeyRepo, services.NewFanOutPublisher(sinks...))
	validationService := api_key.NewValidationService(apiKeyRepo)
	excelService := excel.NewExcelService(apiKeyService)
	playgroundService, err := playground.NewService(validationService, cfg.Handoff.Secret, cfg.Handoff.TTL)
	if err != nil {
		return nil, err
	}

	// Create handlers with services
	apiKeyHandler := handlers.NewAPIKeyHandler(apiKeyService, excelService, sseHub)
	validateKeyHandler := handlers.NewValidateKeyHandler(validationService)
	playgroundHandler := handlers.NewPlaygroundHandler(playgroundService)
	apiKeyMiddleware := middleware.NewAPIKeyMiddleware(validationService)

	root := r.Group(cfg.BasePath)

	root.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	root.GET("/metrics", gin.WrapH(promhttp.Handler()))
	logrus.Info("Swagger UI endpoint registered at /swagger/index.html")

	root.POST("/api/validate-key", validateKeyHandler.ValidateKey)

	api := root.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		apiKeys := api.Group("/api-keys")
		{
			apiKeys.GET("", apiKeyHandler.List)
			apiKeys.POST("", apiKeyHandler.Create)
			apiKeys.GET("/export", apiKeyHandler.Export)
			apiKeys.GET("/events", apiKeyHandler.Events)
			apiKeys.GET("/:id/reveal", apiKeyHandler.Reveal)
			apiKeys.PUT("/:id", apiKeyHandler.Update)
			apiKeys.DELETE("/:id", apiKeyHandler.Delete)
		}

		api.POST("/playground/handoff", playgroundHandler.Handoff)
		api.GET("/protected", playgroundHandler.Protected)

		protected := api.Group("/protected")
		protected.Use(apiKeyMiddleware.RequireAPIKey())
		{
			protected.GET("/resource", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"success":    true,
					"message":    "Valid API Key, /protected can be accessed",
					"api_key_id": c.GetString("api_key_id"),
				})
			})
		}
	}

	return r, nil
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
