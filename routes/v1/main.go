package v1

import (
	"api/handlers/auth"
	"api/handlers/quickplay"
	"api/handlers/users"
	"api/middleware"
	"api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine, games *services.GameService, anonymous *services.AnonymousGameService, generator *services.GeneratorService) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500) // 100 requests per second, 150 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	quickplay.RegisterRoutes(v1, games, anonymous, generator)
	users.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
