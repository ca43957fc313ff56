package quickplay

import (
	"net/http"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// StartGame starts a new quickplay game
// @Summary Start a game
// @Description Start a new quickplay game, persisted for logged-in players, transient for anonymous ones
// @Tags Quickplay
// @Accept json
// @Produce json
// @Param request body StartGameRequest true "Category filter (empty means all categories)"
// @Success 201 {object} StartGameResponse
// @Failure 400 {object} map[string]string
// @Router /quickplay/start [post]
func StartGame(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		game, err := gameService.StartGame(user.ID, req.Categories)
		if err != nil {
			response.Error(c, statusForError(err), err.Error())
			return
		}
		c.JSON(http.StatusCreated, StartGameResponse{
			GameID:     game.ID,
			Lives:      game.LivesRemaining,
			Score:      game.Score,
			TimeLimit:  game.TimeLimit,
			Categories: game.CategoryList(),
		})
		return
	}

	state, err := anonymousService.StartGame(req.Categories)
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, StartGameResponse{
		Token:      state.Token,
		Lives:      state.Lives,
		Score:      state.Score,
		TimeLimit:  state.TimeLimit,
		Categories: state.Categories,
	})
}

// GetQuestion serves the next question of an in-progress game
// @Summary Get the next question
// @Description Fetch a random unanswered question for the game; game_over is returned when the bank is exhausted
// @Tags Quickplay
// @Produce json
// @Param game_id query string false "Game ID (authenticated players)"
// @Param token query string false "Game token (anonymous players)"
// @Success 200 {object} QuestionResponse
// @Failure 400,404 {object} map[string]string
// @Router /quickplay/question [get]
func GetQuestion(c *gin.Context) {
	if user, ok := middleware.CurrentUser(c); ok {
		gameID := c.Query("game_id")
		if gameID == "" {
			response.Error(c, http.StatusBadRequest, ErrMissingSession)
			return
		}
		question, gameOver, err := gameService.NextQuestion(user.ID, gameID)
		if err != nil {
			response.Error(c, statusForError(err), err.Error())
			return
		}
		if gameOver {
			c.JSON(http.StatusOK, gin.H{"game_over": true})
			return
		}
		c.JSON(http.StatusOK, toQuestionResponse(question))
		return
	}

	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingSession)
		return
	}
	question, gameOver, err := anonymousService.NextQuestion(token)
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}
	if gameOver {
		c.JSON(http.StatusOK, gin.H{"game_over": true})
		return
	}
	c.JSON(http.StatusOK, toQuestionResponse(question))
}

// SubmitAnswer submits an answer for the current question
// @Summary Submit an answer
// @Description Evaluate an answer, updating score, lives and the remaining time budget
// @Tags Quickplay
// @Accept json
// @Produce json
// @Param request body SubmitAnswerRequest true "Answer submission"
// @Success 200 {object} services.SubmitResult
// @Failure 400,404,409 {object} map[string]string
// @Router /quickplay/answer [post]
func SubmitAnswer(c *gin.Context) {
	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		if req.GameID == "" {
			response.Error(c, http.StatusBadRequest, ErrMissingSession)
			return
		}
		result, err := gameService.SubmitAnswer(user.ID, req.GameID, req.QuestionID, req.Answer, req.ResponseTime)
		if err != nil {
			response.Error(c, statusForError(err), err.Error())
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	if req.Token == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingSession)
		return
	}
	result, err := anonymousService.SubmitAnswer(req.Token, req.QuestionID, req.Answer)
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// EndGame finishes a game and returns the terminal summary
// @Summary End a game
// @Description Finalize the game and return its summary; idempotent for authenticated players
// @Tags Quickplay
// @Accept json
// @Produce json
// @Param request body EndGameRequest true "Game reference"
// @Success 200 {object} services.GameSummary
// @Failure 400,404 {object} map[string]string
// @Router /quickplay/end [post]
func EndGame(c *gin.Context) {
	var req EndGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if user, ok := middleware.CurrentUser(c); ok {
		if req.GameID == "" {
			response.Error(c, http.StatusBadRequest, ErrMissingSession)
			return
		}
		summary, err := gameService.EndGame(user.ID, req.GameID)
		if err != nil {
			response.Error(c, statusForError(err), err.Error())
			return
		}
		c.JSON(http.StatusOK, summary)
		return
	}

	if req.Token == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingSession)
		return
	}
	summary, err := anonymousService.EndGame(req.Token)
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetResults returns the full results of a completed game
// @Summary Get game results
// @Description Fetch the summary, per-question answers, leaderboard rank and personal-best flag of a completed game
// @Tags Quickplay
// @Produce json
// @Param game_id path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,404,409 {object} map[string]string
// @Security Bearer
// @Router /quickplay/results/{game_id} [get]
func GetResults(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return
	}
	gameID := c.Param("game_id")

	summary, err := gameService.Summary(user.ID, gameID)
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}

	var answers []models.QuickplayAnswer
	if err := database.DB.Preload("Question").
		Where("game_id = ?", gameID).
		Order("answered_at ASC").Find(&answers).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch answers")
		return
	}

	rank, err := services.RankForScore(summary.Score)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to compute rank")
		return
	}

	best, err := services.UserBest(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to fetch personal best")
		return
	}
	personalBest := best != nil && summary.Score >= best.Score

	c.JSON(http.StatusOK, gin.H{
		"summary":       summary,
		"answers":       answers,
		"rank":          rank,
		"personal_best": personalBest,
	})
}
