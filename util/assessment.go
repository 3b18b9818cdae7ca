package util

import (
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
)

// ScoreAssessment sums Likert answers against a questionnaire definition.
// Answers must carry exactly one value per item, each within 1..ScaleMax.
// Reverse-keyed items contribute ScaleMax+1-answer so a higher total always
// reads as higher severity.
func ScoreAssessment(assessment model.Assessment, answers []int) (score, maxScore int, err error) {
	if len(answers) != len(assessment.Items) {
		return 0, 0, fmt.Errorf("expected %d answers, got %d", len(assessment.Items), len(answers))
	}

	for i, answer := range answers {
		if answer < 1 || answer > assessment.ScaleMax {
			return 0, 0, fmt.Errorf("answer %d out of range 1..%d", i+1, assessment.ScaleMax)
		}
		if assessment.Items[i].Reverse {
			score += assessment.ScaleMax + 1 - answer
		} else {
			score += answer
		}
	}

	return score, assessment.ScaleMax * len(assessment.Items), nil
}

// SeverityBand maps a score to a coarse severity label by the fraction of the
// maximum score reached.
func SeverityBand(score, maxScore int) string {
	if maxScore <= 0 {
		return "unknown"
	}
	ratio := float64(score) / float64(maxScore)
	switch {
	case ratio < 0.4:
		return "low"
	case ratio < 0.7:
		return "moderate"
	default:
		return "high"
	}
}
