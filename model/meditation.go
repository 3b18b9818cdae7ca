package model

import (
	"time"

	"gorm.io/gorm"
)

// Meditation kinds accepted by the timer endpoints.
const (
	MeditationBreathing = "breathing"
	MeditationBodyScan  = "body-scan"
	MeditationUnguided  = "unguided"
)

// MeditationSession is a completed sit logged from the meditation timer.
type MeditationSession struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"column:user_id;index"`
	Kind        string    `json:"kind" gorm:"column:kind"`
	DurationSec int       `json:"duration_sec" gorm:"column:duration_sec"`
	CompletedAt time.Time `json:"completed_at" gorm:"column:completed_at"`
}
