package users

import "time"

// Constants for error messages
const (
	ErrFetchProfileFailed = "Failed to fetch profile"
	ErrFetchMetricsFailed = "Failed to fetch performance metrics"
)

// ProfileResponse model for the player profile
type ProfileResponse struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	TotalScore   int        `json:"total_score"`
	GamesPlayed  int        `json:"games_played"`
	HighestScore int        `json:"highest_score"`
	LastPlayed   *time.Time `json:"last_played"`
	RankTier     string     `json:"rank_tier"`
}
