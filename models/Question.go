package models

import "time"

// Question difficulty tiers
const (
    DifficultyEasy   = "easy"
    DifficultyMedium = "medium"
    DifficultyHard   = "hard"
)

// Question categories (fixed set)
const (
    CategoryLogicalReasoning      = "logical_reasoning"
    CategoryQuantitativeReasoning = "quantitative_reasoning"
    CategoryLinguisticReasoning   = "linguistic_reasoning"
    CategorySpatialReasoning      = "spatial_reasoning"
)

// Categories lists every valid question category
var Categories = []string{
    CategoryLogicalReasoning,
    CategoryQuantitativeReasoning,
    CategoryLinguisticReasoning,
    CategorySpatialReasoning,
}

// ValidCategory reports whether c is one of the known categories
func ValidCategory(c string) bool {
    for _, cat := range Categories {
        if cat == c {
            return true
        }
    }
    return false
}

// Question represents a quickplay quiz question with four options
type Question struct {
    ID                 string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    QuestionText       string    `gorm:"type:text;not null;column:question_text" json:"question_text"`
    Option1            string    `gorm:"type:varchar(200);not null;column:option_1" json:"option_1"`
    Option2            string    `gorm:"type:varchar(200);not null;column:option_2" json:"option_2"`
    Option3            string    `gorm:"type:varchar(200);not null;column:option_3" json:"option_3"`
    Option4            string    `gorm:"type:varchar(200);not null;column:option_4" json:"option_4"`
    CorrectAnswer      string    `gorm:"type:varchar(200);not null;column:correct_answer" json:"-"`
    Explanation        string    `gorm:"type:text" json:"-"`
    Difficulty         string    `gorm:"type:varchar(20);not null" json:"difficulty"`
    Category           string    `gorm:"type:varchar(25);not null" json:"category"`
    TargetResponseTime *float64  `gorm:"column:target_response_time" json:"target_response_time"`
    CreatedAt          time.Time `json:"created_at"`
}

// Options returns the four options in display order
func (q *Question) Options() []string {
    return []string{q.Option1, q.Option2, q.Option3, q.Option4}
}
