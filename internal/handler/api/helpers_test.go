//go:build unit

package api_test

import (
	"charter-booking/internal/domain/customer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the JWT middleware and marks the request as
// authenticated for userID.
func fakeAuth(userID uuid.UUID, role customer.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}
