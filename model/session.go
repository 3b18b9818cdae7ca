package model

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	gorm.Model
	SessionToken string    `json:"session_token" gorm:"column:session_token;index"`
	UserID       uint      `json:"user_id" gorm:"column:user_id;index"`
	ExpiresAt    time.Time `json:"expires_at" gorm:"column:expires_at"`
	ClientIP     string    `json:"client_ip" gorm:"column:client_ip"`
	Browser      string    `json:"browser" gorm:"column:browser"`
}
