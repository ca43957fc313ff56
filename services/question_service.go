package services

import (
	"fmt"
	"math/rand"

	"api/database"
	"api/models"

	"gorm.io/gorm"
)

// QuestionStore provides read access to the question bank. The game engine
// depends on this interface so tests can run against a stub bank.
type QuestionStore interface {
	Find(id string) (*models.Question, error)
	ListEligible(exclude []string, categories []string) ([]models.Question, error)
}

type dbQuestionStore struct{}

// NewQuestionStore returns the database-backed question store
func NewQuestionStore() QuestionStore {
	return dbQuestionStore{}
}

func (dbQuestionStore) Find(id string) (*models.Question, error) {
	var question models.Question
	if err := database.DB.First(&question, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("question %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch question: %w", err)
	}
	return &question, nil
}

func (dbQuestionStore) ListEligible(exclude []string, categories []string) ([]models.Question, error) {
	query := database.DB.Model(&models.Question{})
	if len(exclude) > 0 {
		query = query.Where("id NOT IN ?", exclude)
	}
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// PickRandom selects one question uniformly at random among the eligible
// candidates. Returns ErrNotFound when none remain.
func PickRandom(store QuestionStore, exclude []string, categories []string) (*models.Question, error) {
	questions, err := store.ListEligible(exclude, categories)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no eligible question: %w", ErrNotFound)
	}
	question := questions[rand.Intn(len(questions))]
	return &question, nil
}
