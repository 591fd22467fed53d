//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/jwt"
	"charter-booking/internal/pkg/password"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSecret = "test-secret-key-for-charter-booking"

func newAuthCommands(h *harness) (commands.AuthCommands, *jwt.Service) {
	clk := clock.NewMockClock(fixedNow)
	svc := jwt.NewService(testSecret, time.Hour, clk)
	return commands.NewAuthCommands(h.uow, svc, clk), svc
}

func TestAuthCommands_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for the new account", func(t *testing.T) {
		h := newHarness(t)
		id := uuid.New()
		h.customers.EXPECT().Register(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, c *customer.Customer) (uuid.UUID, error) {
				assert.Equal(t, "casey@example.com", c.Email().Value())
				require.NotNil(t, c.PasswordHash())
				assert.NoError(t, password.ComparePassword(*c.PasswordHash(), "tight-lines-42"))
				return id, nil
			})
		uc, svc := newAuthCommands(h)

		res, err := uc.Register(ctx, commands.RegisterRequest{
			Email:    "Casey@Example.com",
			Name:     "Casey Angler",
			Password: "tight-lines-42",
		})

		require.NoError(t, err)
		assert.Equal(t, id, res.CustomerID)
		assert.Equal(t, customer.RoleCustomer, res.Role)
		assert.Equal(t, fixedNow.Add(time.Hour), res.ExpiresAt)

		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, id, claims.CustomerID)
	})

	t.Run("email with a password already", func(t *testing.T) {
		h := newHarness(t)
		h.customers.EXPECT().Register(ctx, gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("email already registered", nil, infra.KindDuplicateKey))
		uc, _ := newAuthCommands(h)

		_, err := uc.Register(ctx, commands.RegisterRequest{
			Email: "casey@example.com", Name: "Casey", Password: "tight-lines-42",
		})

		assert.ErrorIs(t, err, commands.ErrEmailAlreadyTaken)
	})

	t.Run("weak password", func(t *testing.T) {
		h := newHarness(t)
		uc, _ := newAuthCommands(h)

		_, err := uc.Register(ctx, commands.RegisterRequest{
			Email: "casey@example.com", Name: "Casey", Password: "short",
		})

		assert.ErrorIs(t, err, customer.ErrPasswordTooWeak)
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := password.HashPassword("tight-lines-42")
	require.NoError(t, err)

	snapshot := func() *shared.CustomerSnapshot {
		h := hash
		return &shared.CustomerSnapshot{
			ID:           uuid.New(),
			Email:        "casey@example.com",
			Name:         "Casey Angler",
			Role:         customer.RoleAdmin.String(),
			PasswordHash: &h,
		}
	}

	t.Run("valid credentials", func(t *testing.T) {
		h := newHarness(t)
		snap := snapshot()
		h.reads.EXPECT().CustomerByEmail(ctx, "casey@example.com").Return(snap, nil)
		uc, svc := newAuthCommands(h)

		res, err := uc.Login(ctx, "CASEY@example.com", "tight-lines-42")

		require.NoError(t, err)
		assert.Equal(t, snap.ID, res.CustomerID)
		assert.Equal(t, customer.RoleAdmin, res.Role)
		claims, err := svc.ValidateToken(res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	tests := []struct {
		name  string
		setup func(h *harness)
		pass  string
	}{
		{
			name: "unknown email",
			setup: func(h *harness) {
				h.reads.EXPECT().CustomerByEmail(ctx, gomock.Any()).Return(nil, notFound("customer not found"))
			},
			pass: "tight-lines-42",
		},
		{
			name: "wrong password",
			setup: func(h *harness) {
				h.reads.EXPECT().CustomerByEmail(ctx, gomock.Any()).Return(snapshot(), nil)
			},
			pass: "wrong-password",
		},
		{
			name: "guest customer without a password",
			setup: func(h *harness) {
				snap := snapshot()
				snap.PasswordHash = nil
				h.reads.EXPECT().CustomerByEmail(ctx, gomock.Any()).Return(snap, nil)
			},
			pass: "tight-lines-42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			tt.setup(h)
			uc, _ := newAuthCommands(h)

			_, err := uc.Login(ctx, "casey@example.com", tt.pass)

			assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
		})
	}

	t.Run("store failure is not reported as bad credentials", func(t *testing.T) {
		h := newHarness(t)
		h.reads.EXPECT().CustomerByEmail(ctx, gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to get customer", errors.New("timeout")))
		uc, _ := newAuthCommands(h)

		_, err := uc.Login(ctx, "casey@example.com", "tight-lines-42")

		assert.True(t, errs.Is(err, commands.ErrAuthenticationFailed))
		assert.NotErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
