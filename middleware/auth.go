package middleware

import (
	"net/http"
	"strings"

	"api/database"
	"api/models"
	"api/utils"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// extractToken pulls the JWT from the Authorization header or the auth cookie
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func lookupUser(c *gin.Context) (*models.User, bool) {
	token := extractToken(c)
	if token == "" {
		return nil, false
	}

	userID, err := utils.ParseToken(token)
	if err != nil {
		return nil, false
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return nil, false
	}
	if user.Blocked {
		return nil, false
	}
	return &user, true
}

// RequireAuth rejects requests without a valid token
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := lookupUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present but lets
// anonymous requests through. Quickplay endpoints serve both.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, ok := lookupUser(c); ok {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// GetUserFromRequest returns the authenticated user, writing a 401 response
// when none is attached. Callers just return on error.
func GetUserFromRequest(c *gin.Context) (*models.User, error) {
	value, exists := c.Get(userContextKey)
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return nil, http.ErrNoCookie
	}
	return value.(*models.User), nil
}

// CurrentUser returns the authenticated user if one is attached, without
// writing a response
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	return value.(*models.User), true
}
