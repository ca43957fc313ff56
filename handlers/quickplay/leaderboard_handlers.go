package quickplay

import (
	"net/http"
	"strconv"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultLeaderboardSize = 10
	homeTopScores          = 5
)

// GetLeaderboard returns the top leaderboard entries
// @Summary Get the leaderboard
// @Description Fetch the highest-scoring entries, ties broken by faster time
// @Tags Quickplay
// @Produce json
// @Param limit query int false "Number of entries (default 10)"
// @Success 200 {array} LeaderboardEntryResponse
// @Failure 500 {object} map[string]string
// @Router /quickplay/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	limit := defaultLeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			response.Error(c, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = parsed
	}

	entries, err := services.TopScores(limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	results := make([]LeaderboardEntryResponse, 0, len(entries))
	for i, entry := range entries {
		username := "Unknown"
		if entry.Player != nil {
			username = entry.Player.Username
		}
		results = append(results, LeaderboardEntryResponse{
			Rank:         i + 1,
			Username:     username,
			Score:        entry.Score,
			TimeTaken:    entry.TimeTaken,
			DateAchieved: entry.DateAchieved.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, results)
}

// GetHomeStats returns the data shown on the home page
// @Summary Get home page stats
// @Description Fetch the top leaderboard entries plus the current player's stats when logged in
// @Tags Quickplay
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /quickplay/home [get]
func GetHomeStats(c *gin.Context) {
	entries, err := services.TopScores(homeTopScores)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	payload := gin.H{"top_scores": entries}

	if user, ok := middleware.CurrentUser(c); ok {
		stats, err := services.GetPlayerStats(user.ID)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch player stats")
			return
		}
		payload["player_stats"] = stats

		if stats.Best != nil {
			rank, err := services.RankForScore(stats.Best.Score)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to compute rank")
				return
			}
			payload["player_rank"] = rank
		}
	}

	c.JSON(http.StatusOK, payload)
}
