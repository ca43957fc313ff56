package quickplay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"api/gamestate"
	"api/models"
	"api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBank serves a fixed question set so handlers run without a database.
// Anonymous games never touch persistence, which is what these tests cover.
type stubBank struct {
	questions []models.Question
}

func (s stubBank) Find(id string) (*models.Question, error) {
	for i := range s.questions {
		if s.questions[i].ID == id {
			return &s.questions[i], nil
		}
	}
	return nil, fmt.Errorf("question %s: %w", id, services.ErrNotFound)
}

func (s stubBank) ListEligible(exclude []string, categories []string) ([]models.Question, error) {
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

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	bank := stubBank{questions: []models.Question{
		{ID: "q1", QuestionText: "Q1", Option1: "A", Option2: "B", Option3: "C", Option4: "D",
			CorrectAnswer: "A", Category: models.CategoryLogicalReasoning},
	}}

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"),
		services.NewGameService(bank, services.NewGameRepository()),
		services.NewAnonymousGameService(bank, gamestate.NewMemoryStore()),
		services.NewGeneratorService(nil),
	)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestAnonymousFlow_EndToEnd(t *testing.T) {
	r := setupRouter()

	// Start
	w := doJSON(t, r, http.MethodPost, "/api/v1/quickplay/start", gin.H{})
	require.Equal(t, http.StatusCreated, w.Code)
	started := decode(t, w)
	token, _ := started["token"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, float64(3), started["lives"])
	assert.Equal(t, float64(300), started["time_limit"])

	// Question
	w = doJSON(t, r, http.MethodGet, "/api/v1/quickplay/question?token="+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	question := decode(t, w)
	assert.Equal(t, "q1", question["id"])
	assert.Len(t, question["options"], 4)
	assert.NotContains(t, question, "correct_answer")

	// Correct answer
	w = doJSON(t, r, http.MethodPost, "/api/v1/quickplay/answer", gin.H{
		"token": token, "question_id": "q1", "answer": "a",
	})
	require.Equal(t, http.StatusOK, w.Code)
	result := decode(t, w)
	assert.Equal(t, true, result["correct"])
	assert.Equal(t, float64(1), result["score"])
	assert.Equal(t, "A", result["correct_answer"])

	// Same question again is rejected
	w = doJSON(t, r, http.MethodPost, "/api/v1/quickplay/answer", gin.H{
		"token": token, "question_id": "q1", "answer": "a",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Bank exhausted
	w = doJSON(t, r, http.MethodGet, "/api/v1/quickplay/question?token="+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["game_over"])

	// End
	w = doJSON(t, r, http.MethodPost, "/api/v1/quickplay/end", gin.H{"token": token})
	require.Equal(t, http.StatusOK, w.Code)
	summary := decode(t, w)
	assert.Equal(t, float64(1), summary["score"])
	assert.Equal(t, services.LoginPrompt, summary["message"])

	// The session is gone
	w = doJSON(t, r, http.MethodGet, "/api/v1/quickplay/question?token="+token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnonymousStart_RejectsUnknownCategory(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/quickplay/start", gin.H{
		"categories": []string{"astrology"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetQuestion_RequiresSessionReference(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodGet, "/api/v1/quickplay/question", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswer_UnknownToken(t *testing.T) {
	r := setupRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/quickplay/answer", gin.H{
		"token": "missing", "question_id": "q1", "answer": "a",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
