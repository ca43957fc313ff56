package services

import (
	"fmt"
	"log"
	"time"

	"api/database"
	"api/models"
	"api/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// metricsWindow is the trailing period scanned when recomputing per-user
// category accuracy
const metricsWindow = 30 * 24 * time.Hour

// metricsRefreshInterval bounds opportunistic recomputes; cached rows newer
// than this are served as-is unless a recompute is forced
const metricsRefreshInterval = time.Hour

type categoryRow struct {
	Category string
	Total    int64
	Correct  int64
}

// RecomputeUserMetrics rebuilds the cached per-category accuracy row for a
// user from their answer history. The cached row is derived data: wiping it
// and recomputing is always safe.
func RecomputeUserMetrics(userID string, force bool) (*models.UserPerformanceMetrics, error) {
	var cached models.UserPerformanceMetrics
	err := database.DB.Where("user_id = ?", userID).First(&cached).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to fetch metrics: %w", err)
	}
	if err == nil && !force && time.Since(cached.UpdatedAt) < metricsRefreshInterval {
		return &cached, nil
	}

	cutoff := time.Now().Add(-metricsWindow)

	var rows []categoryRow
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Select("questions.category AS category, COUNT(*) AS total, SUM(CASE WHEN quickplay_answers.is_correct THEN 1 ELSE 0 END) AS correct").
		Joins("JOIN quickplay_games ON quickplay_games.id = quickplay_answers.game_id").
		Joins("JOIN questions ON questions.id = quickplay_answers.question_id").
		Where("quickplay_games.player_id = ? AND quickplay_answers.answered_at >= ?", userID, cutoff).
		Group("questions.category").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate answers: %w", err)
	}

	categoryAccuracy := datatypes.JSONMap{}
	var totalAnswers, correctAnswers int64
	var accuracySum float64
	for _, row := range rows {
		accuracy := 0.0
		if row.Total > 0 {
			accuracy = float64(row.Correct) / float64(row.Total) * 100
		}
		categoryAccuracy[row.Category] = accuracy
		accuracySum += accuracy
		totalAnswers += row.Total
		correctAnswers += row.Correct
	}

	// Overall accuracy is the mean of per-category accuracies, so a weak
	// category drags the rank even when it is rarely played
	overall := 0.0
	if len(rows) > 0 {
		overall = accuracySum / float64(len(rows))
	}

	cached.UserID = userID
	cached.CategoryAccuracy = categoryAccuracy
	cached.OverallAccuracy = overall
	cached.RankTier = utils.RankTierFromAccuracy(overall)
	cached.TotalAnswers = int(totalAnswers)
	cached.CorrectAnswers = int(correctAnswers)

	if cached.ID == "" {
		if err := database.DB.Create(&cached).Error; err != nil {
			return nil, fmt.Errorf("failed to create metrics: %w", err)
		}
	} else {
		if err := database.DB.Save(&cached).Error; err != nil {
			return nil, fmt.Errorf("failed to update metrics: %w", err)
		}
	}

	return &cached, nil
}

// UpdateGlobalMetrics folds one completed game into the daily aggregate row
func UpdateGlobalMetrics(game *models.QuickplayGame) error {
	day := time.Now().Truncate(24 * time.Hour)

	var answered, correct int64
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ?", game.ID).Count(&answered).Error; err != nil {
		return fmt.Errorf("failed to count answers: %w", err)
	}
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ? AND is_correct = ?", game.ID, true).Count(&correct).Error; err != nil {
		return fmt.Errorf("failed to count correct answers: %w", err)
	}

	var daily models.GlobalGameMetrics
	err := database.DB.Where("date = ?", day).First(&daily).Error
	if err == gorm.ErrRecordNotFound {
		daily = models.GlobalGameMetrics{Date: day}
	} else if err != nil {
		return fmt.Errorf("failed to fetch daily metrics: %w", err)
	}

	games := daily.GamesPlayed + 1
	daily.AverageScore = (daily.AverageScore*float64(daily.GamesPlayed) + float64(game.Score)) / float64(games)
	daily.GamesPlayed = games
	daily.QuestionsAnswered += int(answered)
	daily.CorrectAnswers += int(correct)

	if daily.ID == "" {
		if err := database.DB.Create(&daily).Error; err != nil {
			return fmt.Errorf("failed to create daily metrics: %w", err)
		}
		return nil
	}
	if err := database.DB.Save(&daily).Error; err != nil {
		return fmt.Errorf("failed to update daily metrics: %w", err)
	}
	return nil
}

// OnGameCompleted is the post-completion hook wired into the game engine.
// Failures are logged, never propagated back into the game flow: all the
// data here is derived and recomputable.
func OnGameCompleted(game *models.QuickplayGame) {
	if _, err := RecomputeUserMetrics(game.PlayerID, true); err != nil {
		log.Printf("Failed to recompute metrics for user %s: %v", game.PlayerID, err)
	}
	if err := UpdateGlobalMetrics(game); err != nil {
		log.Printf("Failed to update global metrics: %v", err)
	}
}
