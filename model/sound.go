package model

import (
	"fmt"

	"gorm.io/gorm"
)

// Sound is an ambient audio track in the built-in catalog.
type Sound struct {
	gorm.Model
	Key         string `json:"key" gorm:"column:sound_key;uniqueIndex"`
	Title       string `json:"title" gorm:"column:title"`
	Category    string `json:"category" gorm:"column:category;index"`
	FileURL     string `json:"file_url" gorm:"column:file_url"`
	DurationSec int    `json:"duration_sec" gorm:"column:duration_sec"`
}

// SeedSounds inserts the ambient sound catalog if it is not present yet.
func SeedSounds(db *gorm.DB) error {
	sounds := []Sound{
		{Key: "rain", Title: "Gentle Rain", Category: "nature", FileURL: "/static/sounds/rain.mp3", DurationSec: 600},
		{Key: "ocean", Title: "Ocean Waves", Category: "nature", FileURL: "/static/sounds/ocean.mp3", DurationSec: 600},
		{Key: "forest", Title: "Forest Morning", Category: "nature", FileURL: "/static/sounds/forest.mp3", DurationSec: 600},
		{Key: "white-noise", Title: "White Noise", Category: "noise", FileURL: "/static/sounds/white-noise.mp3", DurationSec: 600},
		{Key: "brown-noise", Title: "Brown Noise", Category: "noise", FileURL: "/static/sounds/brown-noise.mp3", DurationSec: 600},
		{Key: "singing-bowl", Title: "Singing Bowl", Category: "meditation", FileURL: "/static/sounds/singing-bowl.mp3", DurationSec: 300},
	}

	for _, sound := range sounds {
		var existing Sound
		err := db.Where("sound_key = ?", sound.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&sound).Error; err != nil {
			return fmt.Errorf("failed to seed sound %s: %w", sound.Key, err)
		}
	}
	return nil
}
