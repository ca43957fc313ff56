package models

import "time"

// LeaderboardEntry is a snapshot created once per completed authenticated
// game. Ranking sorts on (score desc, time_taken asc).
type LeaderboardEntry struct {
    ID           string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    PlayerID     string    `gorm:"type:uuid;not null;column:player_id" json:"player_id"`
    Player       *User     `gorm:"foreignKey:PlayerID" json:"player"`
    Score        int       `gorm:"not null" json:"score"`
    TimeTaken    int       `gorm:"not null;column:time_taken" json:"time_taken"`
    DateAchieved time.Time `gorm:"autoCreateTime;column:date_achieved" json:"date_achieved"`
}
