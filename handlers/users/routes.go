package users

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to user profiles
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {

	users := r.Group("/users", middleware.RequireAuth())
	{
		users.GET("/profile", GetProfile)
		users.GET("/metrics", GetPerformanceMetrics)
	}
}
