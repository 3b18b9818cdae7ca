package endpoint

import (
	"net/http"
	"testing"
	"time"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func meditationRouter(t *testing.T) (*gin.Engine, *gorm.DB, model.User) {
	t.Helper()
	r, db := setupEndpointTest(t)
	user := createTestUser(t, db, "Sitter", "sitter@example.com", model.RoleClient)

	group := r.Group("/api", authAs(user.ID, user.RoleID))
	group.GET("/meditations", ListMeditationSessions)
	group.POST("/meditations", CreateMeditationSession)
	group.GET("/meditations/summary", MeditationSummary)
	return r, db, user
}

func TestCreateMeditationSession(t *testing.T) {
	r, _, _ := meditationRouter(t)

	w := doRequest(t, r, requestParams{method: "POST", path: "/api/meditations", body: map[string]interface{}{
		"kind":         model.MeditationBreathing,
		"duration_sec": 600,
	}})
	assertSuccess(t, w)

	w = doRequest(t, r, requestParams{method: "GET", path: "/api/meditations"})
	assertSuccess(t, w)
	assert.Len(t, dataArray(t, w), 1)
}

func TestCreateMeditationSessionValidation(t *testing.T) {
	r, _, _ := meditationRouter(t)

	w := doRequest(t, r, requestParams{method: "POST", path: "/api/meditations", body: map[string]interface{}{
		"kind":         "levitation",
		"duration_sec": 600,
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, requestParams{method: "POST", path: "/api/meditations", body: map[string]interface{}{
		"kind":         model.MeditationUnguided,
		"duration_sec": -5,
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeditationSummaryStreak(t *testing.T) {
	r, db, user := meditationRouter(t)

	// Sessions today, yesterday, and four days ago: streak of 2.
	now := time.Now()
	for _, daysAgo := range []int{0, 1, 4} {
		s := model.MeditationSession{
			UserID:      user.ID,
			Kind:        model.MeditationBreathing,
			DurationSec: 300,
			CompletedAt: now.AddDate(0, 0, -daysAgo),
		}
		assert.NoError(t, db.Create(&s).Error)
	}

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/meditations/summary"})
	assertSuccess(t, w)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total_sessions"])
	assert.Equal(t, float64(900), data["total_seconds"])
	assert.Equal(t, float64(2), data["streak_days"])
}
