package endpoint

import (
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type submitAssessmentRequest struct {
	Answers []int `json:"answers" binding:"required"`
}

// ListAssessments returns the questionnaire catalog.
func ListAssessments(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	var assessments []model.Assessment
	if err := db.Find(&assessments).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve assessments", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Assessments retrieved", Data: assessments})
}

// SubmitAssessment scores an answer sheet against the questionnaire named in
// the path and persists the result.
func SubmitAssessment(c *gin.Context) {
	key := c.Param("key")

	var req submitAssessmentRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var assessment model.Assessment
	if err := db.Where("assessment_key = ?", key).First(&assessment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Assessment not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load assessment", Err: err})
		return
	}

	score, maxScore, err := util.ScoreAssessment(assessment, req.Answers)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: err.Error(), Err: fmt.Errorf("invalid answer sheet")})
		return
	}

	result := model.AssessmentResult{
		UserID:        userID,
		AssessmentKey: assessment.Key,
		Score:         score,
		MaxScore:      maxScore,
		Severity:      util.SeverityBand(score, maxScore),
	}
	if err := db.Create(&result).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save assessment result", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Assessment scored", Data: result})
}

// ListAssessmentResults returns the caller's scored submissions, newest first.
func ListAssessmentResults(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var results []model.AssessmentResult
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve results", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Assessment results retrieved", Data: results})
}
