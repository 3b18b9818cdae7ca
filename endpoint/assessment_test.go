package endpoint

import (
	"net/http"
	"testing"

	"github.com/erinskieasy/calm-yuh-mind/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func assessmentRouter(t *testing.T) (*gin.Engine, *gorm.DB, model.User) {
	t.Helper()
	r, db := setupEndpointTest(t)
	if err := model.SeedAssessments(db); err != nil {
		t.Fatalf("failed to seed assessments: %v", err)
	}
	user := createTestUser(t, db, "Assessed", "assessed@example.com", model.RoleClient)

	group := r.Group("/api", authAs(user.ID, user.RoleID))
	group.GET("/assessments", ListAssessments)
	group.POST("/assessments/:key", SubmitAssessment)
	group.GET("/assessments/results", ListAssessmentResults)
	return r, db, user
}

func TestListAssessments(t *testing.T) {
	r, _, _ := assessmentRouter(t)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/assessments"})
	assertSuccess(t, w)
	assert.Len(t, dataArray(t, w), 2)
}

func TestSubmitAssessmentScoresReverseItems(t *testing.T) {
	r, db, user := assessmentRouter(t)

	// stress-check: items 3 and 5 are reverse-keyed on a 1..5 scale.
	// Answers 5,5,1,5,1 => 5+5+(6-1)+5+(6-1) = 25 of 25.
	w := doRequest(t, r, requestParams{method: "POST", path: "/api/assessments/stress-check", body: map[string]interface{}{
		"answers": []int{5, 5, 1, 5, 1},
	}})
	assertSuccess(t, w)

	data := decodeResponse(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(25), data["score"])
	assert.Equal(t, float64(25), data["max_score"])
	assert.Equal(t, "high", data["severity"])

	var result model.AssessmentResult
	assert.NoError(t, db.Where("user_id = ?", user.ID).First(&result).Error)
	assert.Equal(t, 25, result.Score)
	assert.Equal(t, "stress-check", result.AssessmentKey)
}

func TestSubmitAssessmentValidation(t *testing.T) {
	r, _, _ := assessmentRouter(t)

	// Wrong answer count.
	w := doRequest(t, r, requestParams{method: "POST", path: "/api/assessments/stress-check", body: map[string]interface{}{
		"answers": []int{1, 2},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Out-of-scale answer.
	w = doRequest(t, r, requestParams{method: "POST", path: "/api/assessments/stress-check", body: map[string]interface{}{
		"answers": []int{1, 2, 3, 4, 9},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown questionnaire.
	w = doRequest(t, r, requestParams{method: "POST", path: "/api/assessments/does-not-exist", body: map[string]interface{}{
		"answers": []int{1},
	}})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListAssessmentResultsScopedToUser(t *testing.T) {
	r, db, _ := assessmentRouter(t)
	other := createTestUser(t, db, "Other", "other-assess@example.com", model.RoleClient)
	assert.NoError(t, db.Create(&model.AssessmentResult{
		UserID:        other.ID,
		AssessmentKey: "stress-check",
		Score:         10,
		MaxScore:      25,
		Severity:      "moderate",
	}).Error)

	w := doRequest(t, r, requestParams{method: "GET", path: "/api/assessments/results"})
	assertSuccess(t, w)
	assert.Len(t, dataArray(t, w), 0)
}
