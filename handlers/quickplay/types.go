package quickplay

import (
	"errors"
	"net/http"

	"api/models"
	"api/services"
)

// Constants for error messages
const (
	ErrRateLimitExceeded = "Question generation rate limit exceeded, try again later"
	ErrGenerationFailed  = "Failed to generate question"
	ErrMissingSession    = "A game_id or token is required"
)

// StartGameRequest model for starting a quickplay game
type StartGameRequest struct {
	Categories []string `json:"categories"`
}

// StartGameResponse model returned when a game begins. GameID is set for
// authenticated players, Token for anonymous ones.
type StartGameResponse struct {
	GameID     string   `json:"game_id,omitempty"`
	Token      string   `json:"token,omitempty"`
	Lives      int      `json:"lives"`
	Score      int      `json:"score"`
	TimeLimit  int      `json:"time_limit"`
	Categories []string `json:"categories"`
}

// QuestionResponse model for serving a question without leaking the answer
type QuestionResponse struct {
	ID                 string   `json:"id"`
	QuestionText       string   `json:"question_text"`
	Options            []string `json:"options"`
	Difficulty         string   `json:"difficulty"`
	Category           string   `json:"category"`
	TargetResponseTime *float64 `json:"target_response_time,omitempty"`
}

// SubmitAnswerRequest model for answering the current question
type SubmitAnswerRequest struct {
	GameID       string  `json:"game_id"`
	Token        string  `json:"token"`
	QuestionID   string  `json:"question_id" binding:"required"`
	Answer       string  `json:"answer" binding:"required"`
	ResponseTime float64 `json:"response_time"`
}

// EndGameRequest model for finishing a game
type EndGameRequest struct {
	GameID string `json:"game_id"`
	Token  string `json:"token"`
}

// GenerateQuestionRequest model for the AI generator
type GenerateQuestionRequest struct {
	Category string `json:"category" binding:"required"`
}

// AIQuestionResponse model for serving a generated question. Answers holds
// the correct answer followed by the wrong ones; clients shuffle.
type AIQuestionResponse struct {
	ID           string   `json:"id"`
	QuestionText string   `json:"question_text"`
	Answers      []string `json:"answers"`
	Difficulty   string   `json:"difficulty"`
	Category     string   `json:"category"`
}

// LeaderboardEntryResponse model for one leaderboard row
type LeaderboardEntryResponse struct {
	Rank         int    `json:"rank"`
	Username     string `json:"username"`
	Score        int    `json:"score"`
	TimeTaken    int    `json:"time_taken"`
	DateAchieved string `json:"date_achieved"`
}

func toQuestionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{
		ID:                 q.ID,
		QuestionText:       q.QuestionText,
		Options:            q.Options(),
		Difficulty:         q.Difficulty,
		Category:           q.Category,
		TargetResponseTime: q.TargetResponseTime,
	}
}

func toAIQuestionResponse(q *models.AIQuestion) AIQuestionResponse {
	return AIQuestionResponse{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Answers:      q.Answers(),
		Difficulty:   q.Difficulty,
		Category:     q.Category,
	}
}

// statusForError maps service errors onto HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, services.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
