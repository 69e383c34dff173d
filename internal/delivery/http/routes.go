package http

import (
	"github.com/gin-gonic/gin"
	"github.com/platecost/backend/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerClient, cfg.RateLimit.Burst))

	// Health check and metrics endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.POST("/summarize", handler.SummarizeRecipe)
			recipes.GET("/summaries", handler.SummarizeAllRecipes)
			recipes.GET("/:name/summary", handler.SummarizeStoredRecipe)
		}
	}

	return router
}
