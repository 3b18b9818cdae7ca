package endpoint

import (
	"fmt"
	"strconv"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createMoodRequest struct {
	Mood      string `json:"mood" binding:"required"`
	Intensity int    `json:"intensity" binding:"required"`
	Note      string `json:"note"`
}

// ListMoods returns the caller's mood entries, newest first.
func ListMoods(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			util.CallUserError(c, util.APIErrorParams{Msg: "limit must be a positive integer", Err: fmt.Errorf("invalid limit %q", raw)})
			return
		}
		limit = v
	}

	var moods []model.MoodEntry
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Limit(limit).Find(&moods).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve moods", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Moods retrieved", Data: moods})
}

// CreateMood records one mood check-in for the caller.
func CreateMood(c *gin.Context) {
	var req createMoodRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	if req.Intensity < 1 || req.Intensity > 10 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Intensity must be between 1 and 10",
			Err: fmt.Errorf("intensity %d out of range", req.Intensity),
		})
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

	mood := model.MoodEntry{
		UserID:    userID,
		Mood:      req.Mood,
		Intensity: req.Intensity,
		Note:      req.Note,
	}
	if err := db.Create(&mood).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create mood entry", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Mood recorded", Data: mood})
}

// DeleteMood removes one of the caller's mood entries. Rows owned by other
// users read as not found.
func DeleteMood(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Missing mood ID", Err: fmt.Errorf("mood ID is required")})
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

	var mood model.MoodEntry
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&mood).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Mood entry not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load mood entry", Err: err})
		return
	}

	if err := db.Delete(&mood).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete mood entry", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Mood entry deleted"})
}
