package models

import "time"

// User represents a registered player account
type User struct {
    ID           string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    Username     string     `gorm:"type:varchar(50);unique;not null" json:"username"`
    Email        string     `gorm:"type:varchar(255);unique;not null" json:"email"`
    Password     string     `gorm:"type:varchar(255);not null" json:"-"`
    TotalScore   int        `gorm:"not null;default:0;column:total_score" json:"total_score"`
    GamesPlayed  int        `gorm:"not null;default:0;column:games_played" json:"games_played"`
    HighestScore int        `gorm:"not null;default:0;column:highest_score" json:"highest_score"`
    LastPlayed   *time.Time `gorm:"column:last_played" json:"last_played"`
    Blocked      bool       `gorm:"not null;default:false" json:"blocked"`
    CreatedAt    time.Time  `json:"created_at"`
}
