package services

import (
	"testing"

	"api/config"

	"github.com/stretchr/testify/assert"
)

func TestIsCorrectAnswer(t *testing.T) {
	testCases := []struct {
		name      string
		submitted string
		correct   string
		want      bool
	}{
		{name: "exact match", submitted: "42", correct: "42", want: true},
		{name: "case insensitive", submitted: "PARIS", correct: "Paris", want: true},
		{name: "surrounding whitespace", submitted: "  Paris ", correct: "Paris", want: true},
		{name: "wrong answer", submitted: "London", correct: "Paris", want: false},
		{name: "substring is not a match", submitted: "Par", correct: "Paris", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCorrectAnswer(tc.submitted, tc.correct))
		})
	}
}

func TestApplyAnswer_CorrectIncrementsScore(t *testing.T) {
	cfg := config.DefaultGameConfig

	outcome := ApplyAnswer(cfg, 0, 3, 300, true)

	assert.True(t, outcome.Correct)
	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, 3, outcome.Lives)
	assert.Equal(t, 300, outcome.TimeLimit)
	assert.False(t, outcome.Completed)
}

func TestApplyAnswer_EveryThirdCorrectTightensTimeLimit(t *testing.T) {
	cfg := config.DefaultGameConfig

	// Score 2 -> 3 crosses the speed-up boundary
	outcome := ApplyAnswer(cfg, 2, 3, 300, true)
	assert.Equal(t, 3, outcome.Score)
	assert.Equal(t, 285, outcome.TimeLimit)

	// Score 3 -> 4 does not
	outcome = ApplyAnswer(cfg, 3, 3, 285, true)
	assert.Equal(t, 4, outcome.Score)
	assert.Equal(t, 285, outcome.TimeLimit)
}

func TestApplyAnswer_TimeLimitNeverDropsBelowFloor(t *testing.T) {
	cfg := config.DefaultGameConfig

	outcome := ApplyAnswer(cfg, 2, 3, cfg.MinTimeLimit+5, true)
	assert.Equal(t, cfg.MinTimeLimit, outcome.TimeLimit)

	outcome = ApplyAnswer(cfg, 5, 3, cfg.MinTimeLimit, true)
	assert.Equal(t, cfg.MinTimeLimit, outcome.TimeLimit)
}

func TestApplyAnswer_IncorrectCostsLife(t *testing.T) {
	cfg := config.DefaultGameConfig

	outcome := ApplyAnswer(cfg, 5, 3, 300, false)

	assert.False(t, outcome.Correct)
	assert.Equal(t, 5, outcome.Score)
	assert.Equal(t, 2, outcome.Lives)
	assert.Equal(t, 300, outcome.TimeLimit)
	assert.False(t, outcome.Completed)
}

func TestApplyAnswer_LastLifeCompletesGame(t *testing.T) {
	cfg := config.DefaultGameConfig

	outcome := ApplyAnswer(cfg, 5, 1, 300, false)

	assert.Equal(t, 0, outcome.Lives)
	assert.True(t, outcome.Completed)
}

func TestApplyAnswer_LivesNeverNegative(t *testing.T) {
	cfg := config.DefaultGameConfig

	outcome := ApplyAnswer(cfg, 0, 0, 300, false)

	assert.Equal(t, 0, outcome.Lives)
	assert.True(t, outcome.Completed)
}
