package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserPerformanceMetrics caches per-category accuracy over a trailing window.
// Rows are derived data and can be recomputed from answers at any time.
type UserPerformanceMetrics struct {
    ID               string            `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    UserID           string            `gorm:"type:uuid;unique;not null;column:user_id" json:"user_id"`
    User             *User             `gorm:"foreignKey:UserID" json:"-"`
    CategoryAccuracy datatypes.JSONMap `gorm:"column:category_accuracy" json:"category_accuracy"`
    OverallAccuracy  float64           `gorm:"not null;default:0;column:overall_accuracy" json:"overall_accuracy"`
    RankTier         string            `gorm:"type:varchar(20);not null;default:'Bronze';column:rank_tier" json:"rank_tier"`
    TotalAnswers     int               `gorm:"not null;default:0;column:total_answers" json:"total_answers"`
    CorrectAnswers   int               `gorm:"not null;default:0;column:correct_answers" json:"correct_answers"`
    UpdatedAt        time.Time         `json:"updated_at"`
}

// GlobalGameMetrics aggregates completed games per day
type GlobalGameMetrics struct {
    ID                string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Date              time.Time `gorm:"type:date;uniqueIndex;not null" json:"date"`
    GamesPlayed       int       `gorm:"not null;default:0;column:games_played" json:"games_played"`
    QuestionsAnswered int       `gorm:"not null;default:0;column:questions_answered" json:"questions_answered"`
    CorrectAnswers    int       `gorm:"not null;default:0;column:correct_answers" json:"correct_answers"`
    AverageScore      float64   `gorm:"not null;default:0;column:average_score" json:"average_score"`
    UpdatedAt         time.Time `json:"updated_at"`
}
