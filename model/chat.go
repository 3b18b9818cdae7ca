package model

import "gorm.io/gorm"

const (
	ChatSenderUser      = "user"
	ChatSenderCompanion = "companion"
)

// ChatMessage is one turn of the AI companion conversation.
type ChatMessage struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"column:user_id;index"`
	Sender  string `json:"sender" gorm:"column:sender"`
	Content string `json:"content" gorm:"column:content;type:text"`
}
