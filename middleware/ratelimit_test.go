package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/erinskieasy/calm-yuh-mind/config"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func setupRedisMock(t *testing.T) redismock.ClientMock {
	t.Helper()
	rdb, mock := redismock.NewClientMock()
	config.SetRedisClientForTest(rdb)
	t.Cleanup(config.ResetRedisClientForTest)
	return mock
}

func runRateLimitedRequest(limit int) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.GET("/login", RateLimiter(RateLimitConfig{Limit: limit, Window: time.Minute}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest("GET", "/login", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	mock := setupRedisMock(t)
	mock.ExpectIncr("ratelimit:/login:192.0.2.1").SetVal(1)
	mock.ExpectExpire("ratelimit:/login:192.0.2.1", time.Minute).SetVal(true)
	// gin's test requests carry 192.0.2.1 as the client IP
	w := runRateLimitedRequest(3)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	mock := setupRedisMock(t)
	mock.ExpectIncr("ratelimit:/login:192.0.2.1").SetVal(4)
	mock.ExpectExpire("ratelimit:/login:192.0.2.1", time.Minute).SetVal(true)
	w := runRateLimitedRequest(3)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateLimiterWithoutRedisAllows(t *testing.T) {
	config.ResetRedisClientForTest()
	w := runRateLimitedRequest(1)
	assert.Equal(t, http.StatusOK, w.Code)
}
