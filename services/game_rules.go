package services

import (
	"errors"
	"strings"

	"api/config"
)

// AnswerOutcome is the result of applying one submitted answer to a session
type AnswerOutcome struct {
	Correct   bool
	Score     int
	Lives     int
	TimeLimit int
	Completed bool
}

// IsCorrectAnswer compares a submitted answer against the stored correct
// answer, case-insensitively
func IsCorrectAnswer(submitted, correct string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(correct))
}

// ApplyAnswer computes the next score, lives and time budget for a session.
// A correct answer scores a point and every Nth one tightens the time budget
// down to the configured floor. An incorrect answer costs a life; at zero
// lives the session completes. Lives never go below zero.
func ApplyAnswer(cfg config.GameConfig, score, lives, timeLimit int, correct bool) AnswerOutcome {
	outcome := AnswerOutcome{Correct: correct, Score: score, Lives: lives, TimeLimit: timeLimit}

	if correct {
		outcome.Score++
		if cfg.SpeedUpEvery > 0 && outcome.Score%cfg.SpeedUpEvery == 0 {
			outcome.TimeLimit -= cfg.SpeedUpStep
			if outcome.TimeLimit < cfg.MinTimeLimit {
				outcome.TimeLimit = cfg.MinTimeLimit
			}
		}
		return outcome
	}

	outcome.Lives--
	if outcome.Lives <= 0 {
		outcome.Lives = 0
		outcome.Completed = true
	}
	return outcome
}

func joinCategories(categories []string) string {
	return strings.Join(categories, ",")
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func correctnessLabel(correct bool) string {
	if correct {
		return "correct"
	}
	return "incorrect"
}
