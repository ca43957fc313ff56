package services

import (
	"fmt"
	"testing"
	"time"

	"api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memGameRepository is an in-memory GameRepository so engine invariants can
// be checked without a database. It hands out copies, like gorm does, so the
// engine must Save for mutations to stick.
type memGameRepository struct {
	games        map[string]models.QuickplayGame
	answers      []models.QuickplayAnswer
	leaderboard  []models.LeaderboardEntry
	statsApplied int
}

func newMemGameRepository() *memGameRepository {
	return &memGameRepository{games: make(map[string]models.QuickplayGame)}
}

func (r *memGameRepository) Create(game *models.QuickplayGame) error {
	game.ID = uuid.NewString()
	r.games[game.ID] = *game
	return nil
}

func (r *memGameRepository) Find(playerID, gameID string) (*models.QuickplayGame, error) {
	game, exists := r.games[gameID]
	if !exists || game.PlayerID != playerID {
		return nil, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	found := game
	return &found, nil
}

func (r *memGameRepository) Save(game *models.QuickplayGame) error {
	r.games[game.ID] = *game
	return nil
}

func (r *memGameRepository) CloseOpenGames(playerID string, at time.Time) error {
	for id, game := range r.games {
		if game.PlayerID == playerID && !game.IsCompleted {
			end := at
			game.IsCompleted = true
			game.EndTime = &end
			r.games[id] = game
		}
	}
	return nil
}

func (r *memGameRepository) HasAnswer(gameID, questionID string) (bool, error) {
	for _, a := range r.answers {
		if a.GameID == gameID && a.QuestionID == questionID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memGameRepository) AnsweredQuestionIDs(gameID string) ([]string, error) {
	var ids []string
	for _, a := range r.answers {
		if a.GameID == gameID {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids, nil
}

func (r *memGameRepository) RecordAnswer(answer *models.QuickplayAnswer, game *models.QuickplayGame) error {
	answer.ID = uuid.NewString()
	r.answers = append(r.answers, *answer)
	r.games[game.ID] = *game
	return nil
}

func (r *memGameRepository) AnswerCounts(gameID string) (int64, int64, error) {
	var answered, correct int64
	for _, a := range r.answers {
		if a.GameID != gameID {
			continue
		}
		answered++
		if a.IsCorrect {
			correct++
		}
	}
	return answered, correct, nil
}

func (r *memGameRepository) CreateLeaderboardEntry(entry *models.LeaderboardEntry) error {
	entry.ID = uuid.NewString()
	r.leaderboard = append(r.leaderboard, *entry)
	return nil
}

func (r *memGameRepository) ApplyCompletionStats(playerID string, score int, playedAt time.Time) error {
	r.statsApplied++
	return nil
}

func newTestGameService() (*GameService, *memGameRepository) {
	repo := newMemGameRepository()
	return NewGameService(testQuestionBank(), repo), repo
}

func TestGameServiceStartGame_InitialState(t *testing.T) {
	svc, _ := newTestGameService()

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, game.ID)
	assert.Equal(t, 3, game.LivesRemaining)
	assert.Equal(t, 300, game.TimeLimit)
	assert.Equal(t, 0, game.Score)
	assert.False(t, game.IsCompleted)
}

func TestGameServiceStartGame_ClosesPreviousOpenGame(t *testing.T) {
	svc, repo := newTestGameService()

	first, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.StartGame("p1", nil)
	require.NoError(t, err)

	closed, err := repo.Find("p1", first.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsCompleted)
	assert.NotNil(t, closed.EndTime)
}

func TestGameServiceStartGame_RejectsUnknownCategory(t *testing.T) {
	svc, _ := newTestGameService()

	_, err := svc.StartGame("p1", []string{"astrology"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGameService_LivesRunDownCreatesOneLeaderboardEntry(t *testing.T) {
	svc, repo := newTestGameService()

	completions := 0
	svc.SetCompletionHook(func(game *models.QuickplayGame) { completions++ })

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	for i, questionID := range []string{"q1", "q2", "q3"} {
		result, err := svc.SubmitAnswer("p1", game.ID, questionID, "wrong", 1.5)
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, 2-i, result.Lives)
	}

	stored, err := repo.Find("p1", game.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsCompleted)
	assert.NotNil(t, stored.EndTime)

	require.Len(t, repo.leaderboard, 1)
	assert.Equal(t, "p1", repo.leaderboard[0].PlayerID)
	assert.Equal(t, 0, repo.leaderboard[0].Score)
	assert.Equal(t, 1, completions)
	assert.Equal(t, 1, repo.statsApplied)

	// The completed game takes no further answers
	_, err = svc.SubmitAnswer("p1", game.ID, "q1", "A", 1.5)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGameServiceEndGame_IdempotentSingleLeaderboardEntry(t *testing.T) {
	svc, repo := newTestGameService()

	completions := 0
	svc.SetCompletionHook(func(game *models.QuickplayGame) { completions++ })

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("p1", game.ID, "q1", "A", 2.0)
	require.NoError(t, err)

	first, err := svc.EndGame("p1", game.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Score)
	assert.Equal(t, 1, first.QuestionsAnswered)
	assert.Equal(t, 1, first.CorrectAnswers)
	assert.Equal(t, 100.0, first.Accuracy)

	second, err := svc.EndGame("p1", game.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Len(t, repo.leaderboard, 1)
	assert.Equal(t, 1, completions)
	assert.Equal(t, 1, repo.statsApplied)
}

func TestGameService_DuplicateAnswerRejected(t *testing.T) {
	svc, repo := newTestGameService()

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("p1", game.ID, "q1", "A", 1.0)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("p1", game.ID, "q1", "A", 1.0)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Len(t, repo.answers, 1)
}

func TestGameServiceNextQuestion_ExcludesAnsweredAndEndsWhenExhausted(t *testing.T) {
	svc, repo := newTestGameService()

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("p1", game.ID, "q1", "A", 1.0)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer("p1", game.ID, "q3", "C", 1.0)
	require.NoError(t, err)

	question, gameOver, err := svc.NextQuestion("p1", game.ID)
	require.NoError(t, err)
	require.False(t, gameOver)
	assert.Equal(t, "q2", question.ID)

	result, err := svc.SubmitAnswer("p1", game.ID, "q2", "B", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 285, result.TimeLimit)

	// Bank exhausted: the game finalizes and records its entry
	_, gameOver, err = svc.NextQuestion("p1", game.ID)
	require.NoError(t, err)
	assert.True(t, gameOver)
	assert.Len(t, repo.leaderboard, 1)
	assert.Equal(t, 3, repo.leaderboard[0].Score)
}

func TestGameService_UnknownGame(t *testing.T) {
	svc, _ := newTestGameService()

	_, _, err := svc.NextQuestion("p1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SubmitAnswer("p1", "missing", "q1", "A", 1.0)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.EndGame("p1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameService_OtherPlayersGameNotVisible(t *testing.T) {
	svc, _ := newTestGameService()

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.EndGame("p2", game.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGameServiceSummary_RequiresCompletedGame(t *testing.T) {
	svc, _ := newTestGameService()

	game, err := svc.StartGame("p1", nil)
	require.NoError(t, err)

	_, err = svc.Summary("p1", game.ID)
	assert.ErrorIs(t, err, ErrInvalidState)
}
