package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/freshcart/backend/config"
)

// SetupRouter creates and configures the Gin router. A nil limiter disables
// per-client rate limiting on the API routes.
func SetupRouter(cfg *config.Config, handler *Handler, limiter *IPRateLimiter, logger zerolog.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(RateLimitMiddleware(limiter))
	}
	{
		v1.POST("/recipe", handler.Recipe)
		v1.POST("/match", handler.MatchIngredients)
	}

	return router
}
