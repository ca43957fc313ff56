package quickplay

import (
	"errors"
	"net/http"

	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GenerateAIQuestion generates and stores a new AI question
// @Summary Generate an AI question
// @Description Generate a new question for a category through the AI generator
// @Tags AI
// @Accept json
// @Produce json
// @Param request body GenerateQuestionRequest true "Target category"
// @Success 201 {object} AIQuestionResponse
// @Failure 400,429,502 {object} map[string]string
// @Security Bearer
// @Router /quickplay/ai/generate [post]
func GenerateAIQuestion(c *gin.Context) {
	var req GenerateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	question, err := generatorService.Generate(c.Request.Context(), req.Category)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			response.Error(c, http.StatusTooManyRequests, ErrRateLimitExceeded)
		case errors.Is(err, services.ErrValidation):
			response.Error(c, statusForError(err), err.Error())
		default:
			response.Error(c, statusForError(err), ErrGenerationFailed)
		}
		return
	}

	c.JSON(http.StatusCreated, toAIQuestionResponse(question))
}

// GetAIQuestion serves a stored AI question at random
// @Summary Get a random AI question
// @Description Fetch a random stored AI question, optionally filtered by category and difficulty
// @Tags AI
// @Produce json
// @Param category query string false "Category filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {object} AIQuestionResponse
// @Failure 404 {object} map[string]string
// @Router /quickplay/ai/question [get]
func GetAIQuestion(c *gin.Context) {
	question, err := services.RandomAIQuestion(c.Query("category"), c.Query("difficulty"))
	if err != nil {
		response.Error(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, toAIQuestionResponse(question))
}
