// Package gamestate holds the transient state of anonymous quickplay
// sessions in an expiring store keyed by an opaque token. Anonymous play
// never touches the game or leaderboard tables.
package gamestate

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no state exists for a token (never created,
// expired, or already deleted).
var ErrNotFound = errors.New("game state not found")

// GameState mirrors the logical fields of a persisted game for anonymous
// players
type GameState struct {
	Token             string    `json:"token"`
	StartTime         time.Time `json:"start_time"`
	Score             int       `json:"score"`
	Lives             int       `json:"lives"`
	TimeLimit         int       `json:"time_limit"`
	Categories        []string  `json:"categories"`
	AnsweredQuestions []string  `json:"answered_questions"`
	IsCompleted       bool      `json:"is_completed"`
}

// Answered reports whether the question was already answered in this session
func (g *GameState) Answered(questionID string) bool {
	for _, id := range g.AnsweredQuestions {
		if id == questionID {
			return true
		}
	}
	return false
}

// Store persists anonymous game state with a bounded lifetime
type Store interface {
	Get(token string) (*GameState, error)
	Save(state *GameState, ttl time.Duration) error
	Delete(token string) error
}

// NewToken returns a fresh opaque session token
func NewToken() string {
	return uuid.NewString()
}
