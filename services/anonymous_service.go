package services

import (
	"fmt"
	"time"

	"api/config"
	"api/gamestate"
	"api/metrics"
	"api/models"
)

// AnonymousSummary is the client-visible summary of an anonymous game.
// Nothing is persisted; the message invites the player to log in.
type AnonymousSummary struct {
	Score             int     `json:"score"`
	QuestionsAnswered int     `json:"questions_answered"`
	Accuracy          float64 `json:"accuracy"`
	TimeTaken         int     `json:"time_taken"`
	Message           string  `json:"message"`
}

// LoginPrompt shown when an anonymous game ends
const LoginPrompt = "Log in to save your score and track your progress!"

// AnonymousGameService runs the same game rules as GameService but keeps all
// state in an expiring token-keyed store. It never creates database rows.
type AnonymousGameService struct {
	cfg       config.GameConfig
	questions QuestionStore
	store     gamestate.Store
	locks     *keyedMutex
}

// NewAnonymousGameService builds the anonymous engine over a question store
// and a game state store
func NewAnonymousGameService(questions QuestionStore, store gamestate.Store) *AnonymousGameService {
	return &AnonymousGameService{
		cfg:       config.DefaultGameConfig,
		questions: questions,
		store:     store,
		locks:     newKeyedMutex(),
	}
}

// StartGame creates fresh transient state and returns it with its token
func (s *AnonymousGameService) StartGame(categories []string) (*gamestate.GameState, error) {
	for _, c := range categories {
		if !models.ValidCategory(c) {
			return nil, fmt.Errorf("unknown category %q: %w", c, ErrValidation)
		}
	}

	state := &gamestate.GameState{
		Token:      gamestate.NewToken(),
		StartTime:  time.Now(),
		Score:      0,
		Lives:      s.cfg.InitialLives,
		TimeLimit:  s.cfg.InitialTimeLimit,
		Categories: categories,
	}
	if err := s.store.Save(state, s.cfg.AnonymousStateTTL); err != nil {
		return nil, err
	}

	metrics.GamesStarted.Inc()
	return state, nil
}

// NextQuestion picks a random unanswered question for the session. When the
// bank is exhausted the state is marked completed and gameOver is returned.
func (s *AnonymousGameService) NextQuestion(token string) (question *models.Question, gameOver bool, err error) {
	unlock := s.locks.Lock(token)
	defer unlock()

	state, err := s.fetchState(token)
	if err != nil {
		return nil, false, err
	}
	if state.IsCompleted {
		return nil, true, nil
	}

	question, err = PickRandom(s.questions, state.AnsweredQuestions, state.Categories)
	if err != nil {
		if isNotFound(err) {
			state.IsCompleted = true
			if err := s.store.Save(state, s.cfg.AnonymousStateTTL); err != nil {
				return nil, false, err
			}
			return nil, true, nil
		}
		return nil, false, err
	}

	metrics.QuestionsServed.WithLabelValues(question.Category).Inc()
	return question, false, nil
}

// SubmitAnswer evaluates an answer against the stored correct answer and
// updates the transient state. Each question can be answered once.
func (s *AnonymousGameService) SubmitAnswer(token, questionID, answer string) (*SubmitResult, error) {
	unlock := s.locks.Lock(token)
	defer unlock()

	state, err := s.fetchState(token)
	if err != nil {
		return nil, err
	}
	if state.IsCompleted {
		return nil, fmt.Errorf("game already completed: %w", ErrInvalidState)
	}

	question, err := s.questions.Find(questionID)
	if err != nil {
		return nil, err
	}
	if state.Answered(questionID) {
		return nil, fmt.Errorf("question already answered in this game: %w", ErrInvalidState)
	}

	outcome := ApplyAnswer(s.cfg, state.Score, state.Lives, state.TimeLimit, IsCorrectAnswer(answer, question.CorrectAnswer))

	state.Score = outcome.Score
	state.Lives = outcome.Lives
	state.TimeLimit = outcome.TimeLimit
	state.AnsweredQuestions = append(state.AnsweredQuestions, questionID)
	if outcome.Completed {
		state.IsCompleted = true
	}
	if err := s.store.Save(state, s.cfg.AnonymousStateTTL); err != nil {
		return nil, err
	}

	metrics.AnswersSubmitted.WithLabelValues(correctnessLabel(outcome.Correct)).Inc()

	return &SubmitResult{
		Correct:       outcome.Correct,
		Lives:         state.Lives,
		Score:         state.Score,
		TimeLimit:     state.TimeLimit,
		Explanation:   question.Explanation,
		CorrectAnswer: question.CorrectAnswer,
		GameOver:      state.IsCompleted,
	}, nil
}

// EndGame returns the terminal summary and discards the transient state
func (s *AnonymousGameService) EndGame(token string) (*AnonymousSummary, error) {
	unlock := s.locks.Lock(token)
	defer unlock()

	state, err := s.fetchState(token)
	if err != nil {
		return nil, err
	}

	answered := len(state.AnsweredQuestions)
	accuracy := 0.0
	if answered > 0 {
		accuracy = float64(state.Score) / float64(answered) * 100
	}

	summary := &AnonymousSummary{
		Score:             state.Score,
		QuestionsAnswered: answered,
		Accuracy:          accuracy,
		TimeTaken:         int(time.Since(state.StartTime).Seconds()),
		Message:           LoginPrompt,
	}

	if err := s.store.Delete(token); err != nil {
		return nil, err
	}
	metrics.GamesCompleted.Inc()
	return summary, nil
}

func (s *AnonymousGameService) fetchState(token string) (*gamestate.GameState, error) {
	state, err := s.store.Get(token)
	if err != nil {
		if err == gamestate.ErrNotFound {
			return nil, fmt.Errorf("no active game for token: %w", ErrNotFound)
		}
		return nil, err
	}
	return state, nil
}
