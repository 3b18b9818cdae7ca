package model

import "gorm.io/gorm"

type JournalEntry struct {
	gorm.Model
	UserID  uint     `json:"user_id" gorm:"column:user_id;index"`
	Title   string   `json:"title" gorm:"column:title"`
	Content string   `json:"content" gorm:"column:content;type:text"`
	Tags    []string `json:"tags" gorm:"column:tags;serializer:json"`
}
