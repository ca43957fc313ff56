package users

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the authenticated player's profile
// @Summary Get profile
// @Description Fetch the current player's profile with aggregate stats and rank tier
// @Tags Users
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401,500 {object} map[string]string
// @Security Bearer
// @Router /users/profile [get]
func GetProfile(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	perf, err := services.RecomputeUserMetrics(user.ID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchProfileFailed)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		TotalScore:   user.TotalScore,
		GamesPlayed:  user.GamesPlayed,
		HighestScore: user.HighestScore,
		LastPlayed:   user.LastPlayed,
		RankTier:     perf.RankTier,
	})
}

// GetPerformanceMetrics returns the player's per-category accuracy breakdown
// @Summary Get performance metrics
// @Description Fetch the current player's per-category accuracy, overall accuracy and rank tier
// @Tags Users
// @Produce json
// @Success 200 {object} models.UserPerformanceMetrics
// @Failure 401,500 {object} map[string]string
// @Security Bearer
// @Router /users/metrics [get]
func GetPerformanceMetrics(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}

	perf, err := services.RecomputeUserMetrics(user.ID, false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchMetricsFailed)
		return
	}

	c.JSON(http.StatusOK, perf)
}
