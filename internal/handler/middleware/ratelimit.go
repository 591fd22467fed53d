package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

var ErrRateLimited = errs.New("rate limit exceeded")

// KeyFunc derives the limiter identifier for a request.
type KeyFunc func(c *gin.Context) string

// ByClientIP namespaces the client address with scope so separate policies
// do not share counters.
func ByClientIP(scope string) KeyFunc {
	return func(c *gin.Context) string {
		return scope + ":" + c.ClientIP()
	}
}

// RateLimit rejects requests once the policy budget for the key is spent.
// Limiter failures are logged and the request is let through.
func RateLimit(policy ratelimit.Policy, key KeyFunc, clk clock.Clock, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := policy.Check(c.Request.Context(), key(c))
		if err != nil {
			slog.Warn("Rate limiter unavailable, allowing request", "error", err, "path", c.Request.URL.Path)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.RemainingAttempts))
		if res.Allowed {
			c.Next()
			return
		}

		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(res.ResetTime, clk.Now())))
		httperr.AbortWithError(c, http.StatusTooManyRequests, ErrRateLimited, message, gin.H{
			"resetTime": res.ResetTime.UTC().Format(time.RFC3339),
		})
	}
}

func retryAfterSeconds(reset, now time.Time) int {
	secs := int(math.Ceil(reset.Sub(now).Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
