package services

import (
	"fmt"
	"log"
	"time"

	"api/config"
	"api/metrics"
	"api/models"
)

// SubmitResult is returned after evaluating a submitted answer
type SubmitResult struct {
	Correct       bool   `json:"correct"`
	Lives         int    `json:"lives"`
	Score         int    `json:"score"`
	TimeLimit     int    `json:"time_limit"`
	Explanation   string `json:"explanation"`
	CorrectAnswer string `json:"correct_answer"`
	GameOver      bool   `json:"game_over"`
}

// GameSummary is the terminal summary of a completed game
type GameSummary struct {
	GameID            string  `json:"game_id"`
	Score             int     `json:"score"`
	TimeTaken         int     `json:"time_taken"`
	QuestionsAnswered int     `json:"questions_answered"`
	CorrectAnswers    int     `json:"correct_answers"`
	Accuracy          float64 `json:"accuracy"`
}

// GameService orchestrates the lifecycle of persisted quickplay games:
// start, next question, answer evaluation and completion.
type GameService struct {
	cfg         config.GameConfig
	questions   QuestionStore
	games       GameRepository
	locks       *keyedMutex
	onCompleted func(game *models.QuickplayGame)
}

// NewGameService builds a game engine over the given question store and
// game repository
func NewGameService(questions QuestionStore, games GameRepository) *GameService {
	return &GameService{
		cfg:       config.DefaultGameConfig,
		questions: questions,
		games:     games,
		locks:     newKeyedMutex(),
	}
}

// SetCompletionHook registers the hook invoked after a game transitions to
// completed. Metrics recompute and realtime broadcast hang off this instead
// of persistence-layer side effects.
func (s *GameService) SetCompletionHook(hook func(game *models.QuickplayGame)) {
	s.onCompleted = hook
}

// StartGame creates a new in-progress game for the player, force-completing
// any game still open from a previous run.
func (s *GameService) StartGame(playerID string, categories []string) (*models.QuickplayGame, error) {
	for _, c := range categories {
		if !models.ValidCategory(c) {
			return nil, fmt.Errorf("unknown category %q: %w", c, ErrValidation)
		}
	}

	now := time.Now()
	if err := s.games.CloseOpenGames(playerID, now); err != nil {
		return nil, err
	}

	game := models.QuickplayGame{
		PlayerID:       playerID,
		StartTime:      now,
		Score:          0,
		LivesRemaining: s.cfg.InitialLives,
		TimeLimit:      s.cfg.InitialTimeLimit,
		Categories:     joinCategories(categories),
	}
	if err := s.games.Create(&game); err != nil {
		return nil, err
	}

	metrics.GamesStarted.Inc()
	return &game, nil
}

// NextQuestion picks a random unanswered question matching the game's
// category filter. When none remain the game is finalized and gameOver is
// returned instead of a question.
func (s *GameService) NextQuestion(playerID, gameID string) (question *models.Question, gameOver bool, err error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.games.Find(playerID, gameID)
	if err != nil {
		return nil, false, err
	}
	if game.IsCompleted {
		return nil, true, nil
	}

	answered, err := s.games.AnsweredQuestionIDs(gameID)
	if err != nil {
		return nil, false, err
	}

	question, err = PickRandom(s.questions, answered, game.CategoryList())
	if err != nil {
		if isNotFound(err) {
			// Question bank exhausted for this filter
			if err := s.finalize(game); err != nil {
				return nil, false, err
			}
			return nil, true, nil
		}
		return nil, false, err
	}

	metrics.QuestionsServed.WithLabelValues(question.Category).Inc()
	return question, false, nil
}

// SubmitAnswer evaluates an answer, records it, and updates score, lives and
// time budget. The answer record and the game update are applied atomically
// by the repository so the session never ends up half-mutated.
func (s *GameService) SubmitAnswer(playerID, gameID, questionID, answer string, responseTime float64) (*SubmitResult, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.games.Find(playerID, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsCompleted {
		return nil, fmt.Errorf("game already completed: %w", ErrInvalidState)
	}

	question, err := s.questions.Find(questionID)
	if err != nil {
		return nil, err
	}

	duplicate, err := s.games.HasAnswer(gameID, questionID)
	if err != nil {
		return nil, err
	}
	if duplicate {
		return nil, fmt.Errorf("question already answered in this game: %w", ErrInvalidState)
	}

	outcome := ApplyAnswer(s.cfg, game.Score, game.LivesRemaining, game.TimeLimit, IsCorrectAnswer(answer, question.CorrectAnswer))

	record := models.QuickplayAnswer{
		GameID:       gameID,
		QuestionID:   questionID,
		UserAnswer:   answer,
		IsCorrect:    outcome.Correct,
		ResponseTime: responseTime,
	}
	game.Score = outcome.Score
	game.LivesRemaining = outcome.Lives
	game.TimeLimit = outcome.TimeLimit
	if outcome.Completed {
		now := time.Now()
		game.IsCompleted = true
		game.EndTime = &now
	}
	if err := s.games.RecordAnswer(&record, game); err != nil {
		return nil, err
	}

	metrics.AnswersSubmitted.WithLabelValues(correctnessLabel(outcome.Correct)).Inc()

	if outcome.Completed {
		log.Printf("Game %s completed: no lives remaining", gameID)
		s.recordCompletion(game)
	}

	return &SubmitResult{
		Correct:       outcome.Correct,
		Lives:         game.LivesRemaining,
		Score:         game.Score,
		TimeLimit:     game.TimeLimit,
		Explanation:   question.Explanation,
		CorrectAnswer: question.CorrectAnswer,
		GameOver:      game.IsCompleted,
	}, nil
}

// EndGame finalizes a game and returns its terminal summary. Calling it on
// an already-completed game returns the same summary without creating a
// second leaderboard entry.
func (s *GameService) EndGame(playerID, gameID string) (*GameSummary, error) {
	unlock := s.locks.Lock(gameID)
	defer unlock()

	game, err := s.games.Find(playerID, gameID)
	if err != nil {
		return nil, err
	}

	if !game.IsCompleted {
		if err := s.finalize(game); err != nil {
			return nil, err
		}
	}

	return s.summary(game)
}

// Summary returns the terminal summary of a completed game
func (s *GameService) Summary(playerID, gameID string) (*GameSummary, error) {
	game, err := s.games.Find(playerID, gameID)
	if err != nil {
		return nil, err
	}
	if !game.IsCompleted {
		return nil, fmt.Errorf("game still in progress: %w", ErrInvalidState)
	}
	return s.summary(game)
}

// finalize transitions a game to completed, stamps the end time and records
// the leaderboard entry. Must be called with the game lock held.
func (s *GameService) finalize(game *models.QuickplayGame) error {
	now := time.Now()
	game.IsCompleted = true
	game.EndTime = &now
	if err := s.games.Save(game); err != nil {
		return err
	}
	s.recordCompletion(game)
	return nil
}

// recordCompletion creates the leaderboard entry, updates the player's
// aggregates and fires the completion hook. Runs once per game: callers only
// invoke it at the moment the game transitions to completed.
func (s *GameService) recordCompletion(game *models.QuickplayGame) {
	entry := models.LeaderboardEntry{
		PlayerID:  game.PlayerID,
		Score:     game.Score,
		TimeTaken: s.elapsedSeconds(game),
	}
	if err := s.games.CreateLeaderboardEntry(&entry); err != nil {
		log.Printf("Failed to create leaderboard entry for game %s: %v", game.ID, err)
	}

	if err := s.games.ApplyCompletionStats(game.PlayerID, game.Score, time.Now()); err != nil {
		log.Printf("Failed to update player stats for game %s: %v", game.ID, err)
	}

	metrics.GamesCompleted.Inc()

	if s.onCompleted != nil {
		s.onCompleted(game)
	}
}

func (s *GameService) summary(game *models.QuickplayGame) (*GameSummary, error) {
	answered, correct, err := s.games.AnswerCounts(game.ID)
	if err != nil {
		return nil, err
	}

	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(correct) / float64(answered) * 100
	}

	return &GameSummary{
		GameID:            game.ID,
		Score:             game.Score,
		TimeTaken:         s.elapsedSeconds(game),
		QuestionsAnswered: int(answered),
		CorrectAnswers:    int(correct),
		Accuracy:          accuracy,
	}, nil
}

func (s *GameService) elapsedSeconds(game *models.QuickplayGame) int {
	end := time.Now()
	if game.EndTime != nil {
		end = *game.EndTime
	}
	return int(end.Sub(game.StartTime).Seconds())
}
