package model

import "gorm.io/gorm"

// GameScore records one finished round of a mini-game.
type GameScore struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"column:user_id;index"`
	Game   string `json:"game" gorm:"column:game;index"`
	Score  int    `json:"score" gorm:"column:score"`
}
