//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/cookie"
	"charter-booking/internal/pkg/jwt"
	"charter-booking/internal/usecase"
	"charter-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func newAuthRouter(clk clock.Clock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator := usecase.NewTokenValidator(jwt.NewService(testSecret, time.Hour, clk))
	auth := middleware.NewAuthMiddleware(validator)

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	return r
}

func signToken(t *testing.T, clk clock.Clock, id uuid.UUID, role customer.Role) string {
	t.Helper()
	token, err := jwt.NewService(testSecret, time.Hour, clk).GenerateToken(id, "sam@example.com", role)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC))
	r := newAuthRouter(clk)
	userID := uuid.New()

	t.Run("bearer header authenticates", func(t *testing.T) {
		token := signToken(t, clk, userID, customer.RoleCaptain)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)

		var body struct {
			ID   uuid.UUID `json:"id"`
			Role string    `json:"role"`
		}
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID, body.ID)
		assert.Equal(t, "captain", body.Role)
	})

	t.Run("cookie authenticates", func(t *testing.T) {
		token := signToken(t, clk, userID, customer.RoleCustomer)
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}

		rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/me", nil, cookies, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Unauthorized")
	})

	t.Run("tampered token is 401", func(t *testing.T) {
		token := signToken(t, clk, userID, customer.RoleCustomer) + "x"

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("expired token is 401", func(t *testing.T) {
		past := clock.NewMockClock(clk.Now().Add(-2 * time.Hour))
		token := signToken(t, past, userID, customer.RoleCustomer)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, token)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}
