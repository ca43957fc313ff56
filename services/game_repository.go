package services

import (
	"fmt"
	"time"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// GameRepository is the persistence surface of the authenticated game engine.
// The engine depends on this interface so tests can run against an in-memory
// implementation, the same way QuestionStore works.
type GameRepository interface {
	Create(game *models.QuickplayGame) error
	Find(playerID, gameID string) (*models.QuickplayGame, error)
	Save(game *models.QuickplayGame) error
	CloseOpenGames(playerID string, at time.Time) error
	HasAnswer(gameID, questionID string) (bool, error)
	AnsweredQuestionIDs(gameID string) ([]string, error)
	RecordAnswer(answer *models.QuickplayAnswer, game *models.QuickplayGame) error
	AnswerCounts(gameID string) (answered int64, correct int64, err error)
	CreateLeaderboardEntry(entry *models.LeaderboardEntry) error
	ApplyCompletionStats(playerID string, score int, playedAt time.Time) error
}

type dbGameRepository struct{}

// NewGameRepository returns the database-backed game repository
func NewGameRepository() GameRepository {
	return dbGameRepository{}
}

func (dbGameRepository) Create(game *models.QuickplayGame) error {
	if err := database.DB.Create(game).Error; err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (dbGameRepository) Find(playerID, gameID string) (*models.QuickplayGame, error) {
	var game models.QuickplayGame
	if err := database.DB.First(&game, "id = ? AND player_id = ?", gameID, playerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch game: %w", err)
	}
	return &game, nil
}

func (dbGameRepository) Save(game *models.QuickplayGame) error {
	if err := database.DB.Save(game).Error; err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}
	return nil
}

func (dbGameRepository) CloseOpenGames(playerID string, at time.Time) error {
	if err := database.DB.Model(&models.QuickplayGame{}).
		Where("player_id = ? AND is_completed = ?", playerID, false).
		Updates(map[string]interface{}{"is_completed": true, "end_time": at}).Error; err != nil {
		return fmt.Errorf("failed to close previous games: %w", err)
	}
	return nil
}

func (dbGameRepository) HasAnswer(gameID, questionID string) (bool, error) {
	var count int64
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ? AND question_id = ?", gameID, questionID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check previous answers: %w", err)
	}
	return count > 0, nil
}

func (dbGameRepository) AnsweredQuestionIDs(gameID string) ([]string, error) {
	var ids []string
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ?", gameID).Pluck("question_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch answered questions: %w", err)
	}
	return ids, nil
}

// RecordAnswer stores the answer and the updated game in one transaction so
// the session never ends up half-mutated
func (dbGameRepository) RecordAnswer(answer *models.QuickplayAnswer, game *models.QuickplayGame) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return fmt.Errorf("failed to record answer: %w", err)
		}
		if err := tx.Save(game).Error; err != nil {
			return fmt.Errorf("failed to update game: %w", err)
		}
		return nil
	})
}

func (dbGameRepository) AnswerCounts(gameID string) (int64, int64, error) {
	var answered, correct int64
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ?", gameID).Count(&answered).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count answers: %w", err)
	}
	if err := database.DB.Model(&models.QuickplayAnswer{}).
		Where("game_id = ? AND is_correct = ?", gameID, true).Count(&correct).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count correct answers: %w", err)
	}
	return answered, correct, nil
}

func (dbGameRepository) CreateLeaderboardEntry(entry *models.LeaderboardEntry) error {
	if err := database.DB.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create leaderboard entry: %w", err)
	}
	return nil
}

func (dbGameRepository) ApplyCompletionStats(playerID string, score int, playedAt time.Time) error {
	updates := map[string]interface{}{
		"total_score":  gorm.Expr("total_score + ?", score),
		"games_played": gorm.Expr("games_played + 1"),
		"highest_score": gorm.Expr(
			"CASE WHEN highest_score < ? THEN ? ELSE highest_score END", score, score),
		"last_played": playedAt,
	}
	if err := database.DB.Model(&models.User{}).Where("id = ?", playerID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update player stats: %w", err)
	}
	return nil
}
