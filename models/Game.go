package models

import (
	"strings"
	"time"
)

// QuickplayGame represents one play-through for an authenticated player
type QuickplayGame struct {
    ID             string             `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    PlayerID       string             `gorm:"type:uuid;not null;column:player_id" json:"player_id"`
    Player         *User              `gorm:"foreignKey:PlayerID" json:"-"`
    StartTime      time.Time          `gorm:"not null;column:start_time" json:"start_time"`
    EndTime        *time.Time         `gorm:"column:end_time" json:"end_time"`
    Score          int                `gorm:"not null;default:0" json:"score"`
    LivesRemaining int                `gorm:"not null;default:3;column:lives_remaining" json:"lives_remaining"`
    IsCompleted    bool               `gorm:"not null;default:false;column:is_completed" json:"is_completed"`
    TimeLimit      int                `gorm:"not null;default:300;column:time_limit" json:"time_limit"`
    Categories     string             `gorm:"type:varchar(255);column:categories" json:"categories"`
    Answers        []*QuickplayAnswer `gorm:"foreignKey:GameID" json:"-"`
}

// CategoryList returns the comma-separated category filter as a slice,
// empty when the game accepts any category
func (g *QuickplayGame) CategoryList() []string {
    if g.Categories == "" {
        return nil
    }
    parts := strings.Split(g.Categories, ",")
    categories := make([]string, 0, len(parts))
    for _, p := range parts {
        if trimmed := strings.TrimSpace(p); trimmed != "" {
            categories = append(categories, trimmed)
        }
    }
    return categories
}

// QuickplayAnswer links a game to a question answered during it.
// The unique index enforces one answer per question per game.
type QuickplayAnswer struct {
    ID           string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    GameID       string         `gorm:"type:uuid;not null;column:game_id;uniqueIndex:idx_game_question" json:"game_id"`
    QuestionID   string         `gorm:"type:uuid;not null;column:question_id;uniqueIndex:idx_game_question" json:"question_id"`
    Game         *QuickplayGame `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
    Question     *Question      `gorm:"foreignKey:QuestionID" json:"question"`
    UserAnswer   string         `gorm:"type:varchar(200);not null;column:user_answer" json:"user_answer"`
    IsCorrect    bool           `gorm:"not null;column:is_correct" json:"is_correct"`
    ResponseTime float64        `gorm:"not null;default:0;column:response_time" json:"response_time"`
    AnsweredAt   time.Time      `gorm:"autoCreateTime;column:answered_at" json:"answered_at"`
}
