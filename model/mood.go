package model

import "gorm.io/gorm"

// MoodEntry is one mood check-in. Intensity runs 1 (barely) to 10 (strongly).
type MoodEntry struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"column:user_id;index"`
	Mood      string `json:"mood" gorm:"column:mood"`
	Intensity int    `json:"intensity" gorm:"column:intensity"`
	Note      string `json:"note" gorm:"column:note;type:text"`
}
