package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"api/config"
	"api/database"
	"api/metrics"
	"api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxOptionLength is the hard cap on answer option length. Longer options
// are truncated, not rejected.
const maxOptionLength = 25

const generatorSystemPrompt = `You are a professional question generator focusing on reasoning questions.
You must keep all answer options under 25 characters.
The correct_answer MUST exactly match one of the provided options.`

var promptCategoryNames = map[string]string{
	models.CategoryLogicalReasoning:      "logical",
	models.CategoryQuantitativeReasoning: "quantitative",
	models.CategoryLinguisticReasoning:   "linguistic",
	models.CategorySpatialReasoning:      "spatial",
}

// GeneratorService produces new AI questions through the external
// completion capability, validating and persisting each result
type GeneratorService struct {
	cfg     config.GeneratorRateLimitConfig
	client  CompletionClient
	limiter *SlidingWindowLimiter
}

// NewGeneratorService wires the generator to a completion client with the
// default rate-limit window
func NewGeneratorService(client CompletionClient) *GeneratorService {
	cfg := config.DefaultGeneratorRateLimitConfig
	return &GeneratorService{
		cfg:     cfg,
		client:  client,
		limiter: NewSlidingWindowLimiter(cfg.MaxRequests, cfg.Window),
	}
}

// parsedQuestion is the validated result of one generation attempt
type parsedQuestion struct {
	Question      string
	Options       []string
	CorrectAnswer string
	WrongAnswers  []string
	Explanation   string
}

// Generate runs the full generate-parse-validate cycle for a category, up
// to the configured attempt bound, and persists the first valid question.
// The rate limiter is consulted before every upstream call; an exhausted
// window fails the attempt without invoking the external capability.
func (s *GeneratorService) Generate(ctx context.Context, category string) (*models.AIQuestion, error) {
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, ErrValidation)
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		if !s.limiter.Allow() {
			metrics.GeneratorRateLimited.Inc()
			lastErr = fmt.Errorf("generator window exhausted: %w", ErrRateLimited)
			continue
		}

		text, err := s.client.Complete(ctx, generatorSystemPrompt, buildPrompt(category))
		if err != nil {
			log.Printf("Question generation attempt %d failed: %v", attempt, err)
			metrics.AIGenerationFailures.WithLabelValues("upstream").Inc()
			lastErr = err
			continue
		}

		parsed, err := parseGeneratedQuestion(text)
		if err != nil {
			log.Printf("Question generation attempt %d produced invalid output: %v", attempt, err)
			metrics.AIGenerationFailures.WithLabelValues("validation").Inc()
			lastErr = err
			continue
		}

		question, err := s.saveQuestion(parsed, category)
		if err != nil {
			return nil, err
		}
		metrics.AIQuestionsGenerated.WithLabelValues(category).Inc()
		return question, nil
	}

	return nil, lastErr
}

// RandomAIQuestion serves a stored AI question at random, bumping its usage
// counters. Category and difficulty filters are optional.
func RandomAIQuestion(category, difficulty string) (*models.AIQuestion, error) {
	query := database.DB.Model(&models.AIQuestion{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}

	var question models.AIQuestion
	if err := query.Order("RANDOM()").First(&question).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no questions available: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch question: %w", err)
	}

	now := time.Now()
	question.LastUsed = &now
	question.TimesUsed++
	if err := database.DB.Save(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to update question usage: %w", err)
	}
	return &question, nil
}

func buildPrompt(category string) string {
	name := promptCategoryNames[category]
	return fmt.Sprintf(`Generate a senior high school-level %s reasoning question in csv format.

Required format (CSV):
question_text,option1,option2,option3,option4,correct_answer,explanation

STRICT Requirements:
1. Question must be clear and engaging
2. CRITICAL: Each option MUST be EXACTLY 25 characters or less (count carefully)
3. CRITICAL: The correct_answer MUST EXACTLY MATCH one of the four options (option1-option4)
4. No quotes or special characters in the response
5. Each field separated by single comma
6. Question should test %s thinking
7. Use simple numbers and short phrases for options
8. Question must be within 150 letters
9. Explanation must be within 200 letters`, name, name)
}

// parseGeneratedQuestion parses the first line of the completion output as
// comma-separated fields. Overlong options are truncated; a correct answer
// missing from the options is reconciled case-insensitively or rejected.
func parseGeneratedQuestion(text string) (*parsedQuestion, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("empty response: %w", ErrValidation)
	}

	components := strings.Split(lines[0], ",")
	for i := range components {
		components[i] = strings.TrimSpace(components[i])
	}
	if len(components) < 6 {
		return nil, fmt.Errorf("expected at least 6 fields, got %d: %w", len(components), ErrValidation)
	}

	options := make([]string, 0, 4)
	for _, option := range components[1:5] {
		if len(option) > maxOptionLength {
			log.Printf("Option exceeded %d characters, truncating: %s", maxOptionLength, option)
			option = option[:maxOptionLength]
		}
		options = append(options, option)
	}

	correct := components[5]
	if !containsString(options, correct) {
		reconciled := ""
		for _, option := range options {
			if strings.EqualFold(option, correct) {
				reconciled = option
				break
			}
		}
		if reconciled == "" {
			return nil, fmt.Errorf("correct answer %q does not match any option: %w", correct, ErrValidation)
		}
		correct = reconciled
	}

	wrong := make([]string, 0, 3)
	for _, option := range options {
		if option != correct {
			wrong = append(wrong, option)
		}
	}

	explanation := ""
	if len(components) > 6 {
		explanation = strings.Join(components[6:], ",")
	}

	return &parsedQuestion{
		Question:      components[0],
		Options:       options,
		CorrectAnswer: correct,
		WrongAnswers:  wrong,
		Explanation:   explanation,
	}, nil
}

func (s *GeneratorService) saveQuestion(parsed *parsedQuestion, category string) (*models.AIQuestion, error) {
	now := time.Now()
	question := models.AIQuestion{
		QuestionText:  parsed.Question,
		CorrectAnswer: parsed.CorrectAnswer,
		WrongAnswers:  datatypes.NewJSONSlice(parsed.WrongAnswers),
		Explanation:   parsed.Explanation,
		Difficulty:    models.DifficultyMedium,
		Category:      category,
		LastUsed:      &now,
		TimesUsed:     1,
	}
	if err := database.DB.Create(&question).Error; err != nil {
		return nil, fmt.Errorf("failed to persist generated question: %w", err)
	}
	return &question, nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
