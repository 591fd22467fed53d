//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/handler/middleware"
	"charter-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())

	r.GET("/trips/:id", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errors.New("no rows"), "Trip not found", nil)
	})
	r.DELETE("/reviews/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/silent", func(c *gin.Context) {})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestErrorHandler(t *testing.T) {
	r := newErrorRouter()

	t.Run("public error keeps its message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/trips/42", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Trip not found")
	})

	t.Run("no content passes through", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodDelete, "/reviews/42", nil, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("handler that writes nothing", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/silent", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("unknown route gets a json body", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/api/charters", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Not Found")
	})
}

func TestCustomRecovery(t *testing.T) {
	rec := httptest.PerformRequest(t, newErrorRouter(), http.MethodGet, "/panic", nil, "")
	httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
}
