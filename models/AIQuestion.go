package models

import (
	"time"

	"gorm.io/datatypes"
)

// AIQuestion represents a question produced by the AI generator. Unlike
// Question it stores the single correct answer plus the list of wrong ones.
type AIQuestion struct {
    ID            string                       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    QuestionText  string                       `gorm:"type:text;not null;column:question_text" json:"question_text"`
    CorrectAnswer string                       `gorm:"type:varchar(255);not null;column:correct_answer" json:"-"`
    WrongAnswers  datatypes.JSONSlice[string]  `gorm:"column:wrong_answers" json:"-"`
    Explanation   string                       `gorm:"type:text" json:"-"`
    Difficulty    string                       `gorm:"type:varchar(20);not null" json:"difficulty"`
    Category      string                       `gorm:"type:varchar(25);not null" json:"category"`
    CreatedAt     time.Time                    `json:"created_at"`
    LastUsed      *time.Time                   `gorm:"column:last_used" json:"last_used"`
    TimesUsed     int                          `gorm:"not null;default:0;column:times_used" json:"times_used"`
}

// Answers returns the correct answer followed by the wrong ones
func (q *AIQuestion) Answers() []string {
    return append([]string{q.CorrectAnswer}, q.WrongAnswers...)
}
