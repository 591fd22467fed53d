//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, customerID uuid.UUID, email string, role customer.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(customerID, email, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set two hours back so the token has
// already expired against the real clock.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, customerID uuid.UUID, email string, role customer.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, past)
	token, err := service.GenerateToken(customerID, email, role)
	require.NoError(t, err)
	return token
}
