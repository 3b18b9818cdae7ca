package endpoint

import (
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createJournalRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Tags    []string `json:"tags"`
}

// ListJournalEntries returns the caller's journal, newest first.
func ListJournalEntries(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var entries []model.JournalEntry
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&entries).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve journal entries", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Journal entries retrieved", Data: entries})
}

// GetJournalEntry returns one of the caller's entries by ID.
func GetJournalEntry(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}
	userID, ok := currentUserIDOrRespond(c)
	if !ok {
		return
	}

	var entry model.JournalEntry
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Journal entry not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load journal entry", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Journal entry retrieved", Data: entry})
}

// CreateJournalEntry stores a new entry for the caller.
func CreateJournalEntry(c *gin.Context) {
	var req createJournalRequest
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

	entry := model.JournalEntry{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}
	if err := db.Create(&entry).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create journal entry", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Journal entry created", Data: entry})
}

// DeleteJournalEntry removes one of the caller's entries.
func DeleteJournalEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Missing journal entry ID", Err: fmt.Errorf("journal entry ID is required")})
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

	var entry model.JournalEntry
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Journal entry not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to load journal entry", Err: err})
		return
	}

	if err := db.Delete(&entry).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete journal entry", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Journal entry deleted"})
}
