package endpoint

import (
	"fmt"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/erinskieasy/calm-yuh-mind/util"
	"github.com/gin-gonic/gin"
)

type createGameScoreRequest struct {
	Game  string `json:"game" binding:"required"`
	Score int    `json:"score"`
}

// CreateGameScore records a finished mini-game round.
func CreateGameScore(c *gin.Context) {
	var req createGameScoreRequest
	if !bindJSONOrRespond(c, &req, "Invalid request body") {
		return
	}

	if req.Score < 0 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Score must be non-negative",
			Err: fmt.Errorf("score %d is negative", req.Score),
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

	score := model.GameScore{UserID: userID, Game: req.Game, Score: req.Score}
	if err := db.Create(&score).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save score", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Score saved", Data: score})
}

// ListGameScores returns the caller's best and recent scores for a game.
func ListGameScores(c *gin.Context) {
	game := c.Query("game")
	if game == "" {
		util.CallUserError(c, util.APIErrorParams{Msg: "Missing game parameter", Err: fmt.Errorf("game is required")})
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

	var recent []model.GameScore
	if err := db.Where("user_id = ? AND game = ?", userID, game).
		Order("created_at DESC").Limit(20).Find(&recent).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve scores", Err: err})
		return
	}

	best := 0
	for _, s := range recent {
		if s.Score > best {
			best = s.Score
		}
	}
	var allTimeBest model.GameScore
	if err := db.Where("user_id = ? AND game = ?", userID, game).
		Order("score DESC").First(&allTimeBest).Error; err == nil && allTimeBest.Score > best {
		best = allTimeBest.Score
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Scores retrieved",
		Data: map[string]interface{}{
			"best":   best,
			"recent": recent,
		},
	})
}
