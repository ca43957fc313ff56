package services

import (
	"errors"
	"fmt"
	"testing"

	"api/config"
	"api/gamestate"
	"api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuestionStore serves a fixed bank so the engine can run without a
// database
type stubQuestionStore struct {
	questions []models.Question
}

func (s stubQuestionStore) Find(id string) (*models.Question, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
}

func (s stubQuestionStore) ListEligible(exclude []string, categories []string) ([]models.Question, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	var eligible []models.Question
	for _, q := range s.questions {
		if excluded[q.ID] {
			continue
		}
		if len(wanted) > 0 && !wanted[q.Category] {
			continue
		}
		eligible = append(eligible, q)
	}
	return eligible, nil
}

func testQuestionBank() stubQuestionStore {
	return stubQuestionStore{questions: []models.Question{
		{ID: "q1", QuestionText: "Q1", CorrectAnswer: "A", Category: models.CategoryLogicalReasoning},
		{ID: "q2", QuestionText: "Q2", CorrectAnswer: "B", Category: models.CategoryQuantitativeReasoning},
		{ID: "q3", QuestionText: "Q3", CorrectAnswer: "C", Category: models.CategoryLogicalReasoning},
	}}
}

func newTestAnonymousService(bank stubQuestionStore) *AnonymousGameService {
	return NewAnonymousGameService(bank, gamestate.NewMemoryStore())
}

func TestAnonymousStartGame_InitialState(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	assert.NotEmpty(t, state.Token)
	assert.Equal(t, config.DefaultGameConfig.InitialLives, state.Lives)
	assert.Equal(t, config.DefaultGameConfig.InitialTimeLimit, state.TimeLimit)
	assert.Equal(t, 0, state.Score)
	assert.False(t, state.IsCompleted)
}

func TestAnonymousStartGame_RejectsUnknownCategory(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	_, err := svc.StartGame([]string{"astrology"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnonymousGame_CorrectAnswerScores(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	result, err := svc.SubmitAnswer(state.Token, "q1", "a")
	require.NoError(t, err)

	assert.True(t, result.Correct)
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Lives)
	assert.False(t, result.GameOver)
	assert.Equal(t, "A", result.CorrectAnswer)
}

func TestAnonymousGame_ThreeWrongAnswersEndGame(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	for i, questionID := range []string{"q1", "q2", "q3"} {
		result, err := svc.SubmitAnswer(state.Token, questionID, "wrong")
		require.NoError(t, err)
		assert.False(t, result.Correct)
		assert.Equal(t, 2-i, result.Lives)
	}

	// The game completed on the last wrong answer
	_, err = svc.SubmitAnswer(state.Token, "q1", "A")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAnonymousGame_DuplicateAnswerRejected(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(state.Token, "q1", "A")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(state.Token, "q1", "A")
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAnonymousNextQuestion_RespectsCategoryFilter(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame([]string{models.CategoryQuantitativeReasoning})
	require.NoError(t, err)

	question, gameOver, err := svc.NextQuestion(state.Token)
	require.NoError(t, err)
	require.False(t, gameOver)
	assert.Equal(t, models.CategoryQuantitativeReasoning, question.Category)
}

func TestAnonymousNextQuestion_ExhaustedBankEndsGame(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	for _, questionID := range []string{"q1", "q2"} {
		_, err := svc.SubmitAnswer(state.Token, questionID, "nope")
		require.NoError(t, err)
	}
	_, err = svc.SubmitAnswer(state.Token, "q3", "C")
	require.NoError(t, err)

	_, gameOver, err := svc.NextQuestion(state.Token)
	require.NoError(t, err)
	assert.True(t, gameOver)
}

func TestAnonymousEndGame_SummaryAndCleanup(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	state, err := svc.StartGame(nil)
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(state.Token, "q1", "A")
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(state.Token, "q2", "wrong")
	require.NoError(t, err)

	summary, err := svc.EndGame(state.Token)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Score)
	assert.Equal(t, 2, summary.QuestionsAnswered)
	assert.Equal(t, 50.0, summary.Accuracy)
	assert.Equal(t, LoginPrompt, summary.Message)

	// State is gone after the game ends
	_, err = svc.EndGame(state.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnonymousGame_UnknownToken(t *testing.T) {
	svc := newTestAnonymousService(testQuestionBank())

	_, _, err := svc.NextQuestion("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SubmitAnswer("missing", "q1", "A")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.EndGame("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPickRandom_ExcludesAnswered(t *testing.T) {
	bank := testQuestionBank()

	question, err := PickRandom(bank, []string{"q1", "q3"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "q2", question.ID)

	_, err = PickRandom(bank, []string{"q1", "q2", "q3"}, nil)
	assert.True(t, errors.Is(err, ErrNotFound))
}
