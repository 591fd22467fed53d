package middleware

import (
	"log/slog"
	"net/http"

	"charter-booking/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler gives every unwritten failure the same {"error":{"message"}}
// body the handlers produce, including unmatched routes.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		status := c.Writer.Status()
		switch {
		case status == http.StatusOK:
			// a handler returned without responding
			slog.Error("handler wrote no response",
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"errors", c.Errors.String(),
			)
			abortJSON(c, http.StatusInternalServerError, "Internal server error")
		case status >= http.StatusBadRequest:
			abortJSON(c, status, http.StatusText(status))
		default:
			c.Status(status)
			c.Writer.WriteHeaderNow()
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				abortJSON(c, http.StatusInternalServerError, "Internal server error")
			}
		}()
		c.Next()
	}
}

func abortJSON(c *gin.Context, status int, msg string) {
	resp := httperr.Response{Status: status}
	resp.Error.Message = msg
	c.AbortWithStatusJSON(status, resp)
}
