package model

import (
	"fmt"

	"gorm.io/gorm"
)

// AssessmentItem is one Likert-scale prompt. Reverse items score as
// ScaleMax+1-answer so that a higher total always means higher severity.
type AssessmentItem struct {
	Prompt  string `json:"prompt"`
	Reverse bool   `json:"reverse"`
}

// Assessment is a self-assessment questionnaire definition from the built-in
// catalog. Answers run 1..ScaleMax per item.
type Assessment struct {
	gorm.Model
	Key         string           `json:"key" gorm:"column:assessment_key;uniqueIndex"`
	Title       string           `json:"title" gorm:"column:title"`
	Description string           `json:"description" gorm:"column:description;type:text"`
	ScaleMax    int              `json:"scale_max" gorm:"column:scale_max"`
	Items       []AssessmentItem `json:"items" gorm:"column:items;serializer:json"`
}

// AssessmentResult is one scored submission.
type AssessmentResult struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"column:user_id;index"`
	AssessmentKey string `json:"assessment_key" gorm:"column:assessment_key;index"`
	Score         int    `json:"score" gorm:"column:score"`
	MaxScore      int    `json:"max_score" gorm:"column:max_score"`
	Severity      string `json:"severity" gorm:"column:severity"`
}

// SeedAssessments inserts the questionnaire catalog if it is not present yet.
func SeedAssessments(db *gorm.DB) error {
	assessments := []Assessment{
		{
			Key:         "stress-check",
			Title:       "Stress Check",
			Description: "A short check-in on how much pressure you have felt over the last two weeks.",
			ScaleMax:    5,
			Items: []AssessmentItem{
				{Prompt: "I have felt overwhelmed by my responsibilities."},
				{Prompt: "I have found it hard to wind down at the end of the day."},
				{Prompt: "I have felt calm and in control.", Reverse: true},
				{Prompt: "Small problems have felt larger than they are."},
				{Prompt: "I have slept well most nights.", Reverse: true},
			},
		},
		{
			Key:         "mood-baseline",
			Title:       "Mood Baseline",
			Description: "A baseline read on mood and energy to track over time.",
			ScaleMax:    4,
			Items: []AssessmentItem{
				{Prompt: "I have had little interest or pleasure in doing things."},
				{Prompt: "I have felt down or hopeless."},
				{Prompt: "I have felt energetic during the day.", Reverse: true},
				{Prompt: "I have been able to concentrate on everyday tasks.", Reverse: true},
				{Prompt: "I have felt bad about myself."},
				{Prompt: "I have looked forward to things.", Reverse: true},
			},
		},
	}

	for _, assessment := range assessments {
		var existing Assessment
		err := db.Where("assessment_key = ?", assessment.Key).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&assessment).Error; err != nil {
			return fmt.Errorf("failed to seed assessment %s: %w", assessment.Key, err)
		}
	}
	return nil
}
