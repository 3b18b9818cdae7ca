package endpoint

import (
	"fmt"
	"time"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
)

type createMeditationRequest struct {
	Kind        string `json:"kind" binding:"required"`
	DurationSec int    `json:"duration_sec" binding:"required"`
}

var meditationKinds = []string{
	model.MeditationBreathing,
	model.MeditationBodyScan,
	model.MeditationUnguided,
}

// ListMeditationSessions returns the caller's logged sits, newest first.
func ListMeditationSessions(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var sessions []model.MeditationSession
	if err := db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&sessions).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve meditation sessions", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Meditation sessions retrieved", Data: sessions})
}

// CreateMeditationSession logs a completed sit.
func CreateMeditationSession(c *gin.Context) {
	var req createMeditationRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	if !util.Contains(req.Kind, meditationKinds) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Kind must be one of breathing, body-scan, unguided",
			Err: fmt.Errorf("unknown meditation kind %q", req.Kind),
		})
		return
	}
	if req.DurationSec <= 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Duration must be positive",
			Err: fmt.Errorf("duration %d is not positive", req.DurationSec),
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

	session := model.MeditationSession{
		UserID:      userID,
		Kind:        req.Kind,
		DurationSec: req.DurationSec,
		CompletedAt: time.Now(),
	}
	if err := db.Create(&session).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to log meditation session", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Meditation session logged", Data: session})
}

// MeditationSummary aggregates the caller's practice: total sessions, total
// seconds, and the current consecutive-day streak counted back from today.
func MeditationSummary(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var sessions []model.MeditationSession
	if err := db.Where("user_id = ?", userID).Order("completed_at DESC").Find(&sessions).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve meditation sessions", Err: err})
		return
	}

	totalSec := 0
	days := map[string]bool{}
	for _, s := range sessions {
		totalSec += s.DurationSec
		days[s.CompletedAt.Format("2006-01-02")] = true
	}

	streak := 0
	day := time.Now()
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Meditation summary",
		Data: map[string]interface{}{
			"total_sessions": len(sessions),
			"total_seconds":  totalSec,
			"streak_days":    streak,
		},
	})
}
