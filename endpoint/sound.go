package endpoint

import (
	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
)

// ListSounds returns the ambient sound catalog, optionally filtered by category.
func ListSounds(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	query := db.Model(&model.Sound{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var sounds []model.Sound
	if err := query.Order("title ASC").Find(&sounds).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve sounds", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Sounds retrieved", Data: sounds})
}
