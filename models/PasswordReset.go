package models

import "time"

// PasswordReset holds a single-use password reset token, valid for one hour
type PasswordReset struct {
    ID        string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    UserID    string    `gorm:"type:uuid;not null;column:user_id" json:"user_id"`
    User      *User     `gorm:"foreignKey:UserID" json:"-"`
    Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
    CreatedAt time.Time `json:"created_at"`
}
