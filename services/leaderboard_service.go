package services

import (
	"fmt"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// TopScores returns the n best leaderboard entries ordered by score
// descending, ties broken by the shorter time
func TopScores(n int) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := database.DB.Preload("Player").
		Order("score DESC, time_taken ASC").
		Limit(n).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch leaderboard: %w", err)
	}
	return entries, nil
}

// UserBest returns the player's highest-scoring entry, or nil when the
// player has none
func UserBest(playerID string) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	err := database.DB.Where("player_id = ?", playerID).
		Order("score DESC, time_taken ASC").First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user best: %w", err)
	}
	return &entry, nil
}

// RankForScore returns the 1-based leaderboard rank a given score holds
func RankForScore(score int) (int, error) {
	var better int64
	if err := database.DB.Model(&models.LeaderboardEntry{}).
		Where("score > ?", score).Count(&better).Error; err != nil {
		return 0, fmt.Errorf("failed to compute rank: %w", err)
	}
	return int(better) + 1, nil
}

// PlayerStats aggregates a player's game history for the home page
type PlayerStats struct {
	TotalGames   int64                   `json:"total_games"`
	AverageScore float64                 `json:"average_score"`
	Best         *models.LeaderboardEntry `json:"best"`
}

// GetPlayerStats returns total games, average score and best entry for a player
func GetPlayerStats(playerID string) (*PlayerStats, error) {
	stats := &PlayerStats{}

	if err := database.DB.Model(&models.QuickplayGame{}).
		Where("player_id = ?", playerID).Count(&stats.TotalGames).Error; err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	if stats.TotalGames > 0 {
		if err := database.DB.Model(&models.QuickplayGame{}).
			Select("COALESCE(AVG(score), 0)").
			Where("player_id = ?", playerID).Scan(&stats.AverageScore).Error; err != nil {
			return nil, fmt.Errorf("failed to compute average score: %w", err)
		}
	}

	best, err := UserBest(playerID)
	if err != nil {
		return nil, err
	}
	stats.Best = best

	return stats, nil
}
