//go:build unit

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/ratelimit"
	"charter-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLimiter struct{}

func (failingLimiter) Check(context.Context, string, int, time.Duration) (ratelimit.Result, error) {
	return ratelimit.Result{}, errors.New("redis: connection refused")
}

func newLimitedRouter(limiter ratelimit.Limiter, clk clock.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	policy := ratelimit.Policy{Limiter: limiter, MaxAttempts: 3, Window: time.Hour}
	r.POST("/reviews",
		middleware.RateLimit(policy, middleware.ByClientIP("review"), clk, "Too many review submissions. Please try again later."),
		func(c *gin.Context) { c.Status(http.StatusCreated) },
	)
	return r
}

func TestRateLimit_AllowsUpToBudgetThenRejects(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	r := newLimitedRouter(ratelimit.NewMemoryStore(clk), clk)

	for i, remaining := range []string{"2", "1", "0"} {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
		require.Equal(t, http.StatusCreated, rec.Code, "request %d", i+1)
		assert.Equal(t, remaining, rec.Header().Get("X-RateLimit-Remaining"))
	}

	clk.Add(10 * time.Minute)
	rec := httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Too many review submissions")
	assert.Equal(t, "3000", rec.Header().Get("Retry-After"))

	var body struct {
		Detail struct {
			ResetTime string `json:"resetTime"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, start.Add(time.Hour).Format(time.RFC3339), body.Detail.ResetTime)
}

func TestRateLimit_WindowResets(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	r := newLimitedRouter(ratelimit.NewMemoryStore(clk), clk)

	for range 3 {
		httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
	}
	rec := httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	clk.Add(time.Hour + time.Second)
	rec = httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_FailsOpenWhenLimiterErrors(t *testing.T) {
	r := newLimitedRouter(failingLimiter{}, clock.NewRealClock())

	for range 5 {
		rec := httptest.PerformRequest(t, r, http.MethodPost, "/reviews", nil, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

func TestByClientIP_SeparatesScopes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var keys []string
	r.GET("/", func(c *gin.Context) {
		keys = append(keys, middleware.ByClientIP("review")(c), middleware.ByClientIP("login")(c))
	})

	httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

	require.Len(t, keys, 2)
	assert.Equal(t, "review:192.0.2.1", keys[0])
	assert.Equal(t, "login:192.0.2.1", keys[1])
}
