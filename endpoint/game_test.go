package endpoint

import (
	"net/http"
	"testing"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func gameRouter(t *testing.T) (*gin.Engine, *gorm.DB, model.User) {
	t.Helper()
	r, db := setupEndpointTest(t)
	user := createTestUser(t, db, "Player", "player@example.com", model.RoleClient)

	group := r.Group("/api", authAs(user.ID, user.RoleID))
	group.POST("/games/scores", CreateGameScore)
	group.GET("/games/scores", ListGameScores)
	return r, db, user
}

func TestGameScoresBestAndRecent(t *testing.T) {
	r, _, _ := gameRouter(t)

	for _, score := range []int{40, 120, 85} {
		w := doRequest(t, r, requestParams{method: "POST", path: "/api/games/scores", body: map[string]interface{}{
			"game":  "memory-match",
			"score": score,
		}})
		assertSuccess(t, w)
	}

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/games/scores?game=memory-match"})
	assertSuccess(t, w)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(120), data["best"])
	assert.Len(t, data["recent"].([]interface{}), 3)
}

func TestGameScoresScopedByGameAndUser(t *testing.T) {
	r, db, _ := gameRouter(t)
	other := createTestUser(t, db, "Rival", "rival@example.com", model.RoleClient)
	assert.NoError(t, db.Create(&model.GameScore{UserID: other.ID, Game: "memory-match", Score: 999}).Error)

	assertSuccess(t, doRequest(t, r, requestParams{method: "POST", path: "/api/games/scores", body: map[string]interface{}{
		"game": "breathing-bubbles", "score": 10,
	}}))

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/games/scores?game=memory-match"})
	assertSuccess(t, w)
	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["best"], "other users' scores stay out of the board")
	assert.Len(t, data["recent"].([]interface{}), 0)
}

func TestGameScoreValidation(t *testing.T) {
	r, _, _ := gameRouter(t)

	w := doRequest(t, r, requestParams{method: "POST", path: "/api/games/scores", body: map[string]interface{}{
		"game": "memory-match", "score": -1,
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, requestParams{method: "GET", path: "/api/games/scores"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "game parameter is required")
}
