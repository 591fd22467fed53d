//go:build unit

package ratelimit_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/ratelimit"
)

var base = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestMemoryStore_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("first attempt opens a window", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		res, err := store.Check(ctx, "ip-1", 3, time.Hour)
		require.NoError(t, err)

		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.RemainingAttempts)
		assert.Equal(t, base.Add(time.Hour), res.ResetTime)
	})

	t.Run("fourth attempt inside the window is denied", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		expectedRemaining := []int{2, 1, 0}
		for i, want := range expectedRemaining {
			clk.Add(time.Minute)
			res, err := store.Check(ctx, "ip-1", 3, time.Hour)
			require.NoError(t, err)
			assert.True(t, res.Allowed, "attempt %d", i+1)
			assert.Equal(t, want, res.RemainingAttempts, "attempt %d", i+1)
			assert.Equal(t, base.Add(time.Minute+time.Hour), res.ResetTime)
		}

		res, err := store.Check(ctx, "ip-1", 3, time.Hour)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.RemainingAttempts)
		assert.Equal(t, base.Add(time.Minute+time.Hour), res.ResetTime)
	})

	t.Run("denied attempts do not extend the window", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		for range 3 {
			_, err := store.Check(ctx, "ip-1", 3, time.Hour)
			require.NoError(t, err)
		}
		for range 5 {
			clk.Add(5 * time.Minute)
			res, err := store.Check(ctx, "ip-1", 3, time.Hour)
			require.NoError(t, err)
			assert.False(t, res.Allowed)
			assert.Equal(t, base.Add(time.Hour), res.ResetTime)
		}
	})

	t.Run("window resets only after reset time passes", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		for range 3 {
			_, err := store.Check(ctx, "ip-1", 3, time.Hour)
			require.NoError(t, err)
		}

		clk.Set(base.Add(time.Hour))
		res, err := store.Check(ctx, "ip-1", 3, time.Hour)
		require.NoError(t, err)
		assert.False(t, res.Allowed, "exactly at reset time the old window still applies")

		clk.Add(time.Millisecond)
		res, err = store.Check(ctx, "ip-1", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.RemainingAttempts)
		assert.Equal(t, base.Add(2*time.Hour+time.Millisecond), res.ResetTime)
	})

	t.Run("identifiers are independent", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		for range 3 {
			_, err := store.Check(ctx, "ip-1", 3, time.Hour)
			require.NoError(t, err)
		}

		res, err := store.Check(ctx, "ip-2", 3, time.Hour)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.RemainingAttempts)
	})

	t.Run("concurrent attempts never exceed the limit", func(t *testing.T) {
		clk := clock.NewMockClock(base)
		store := ratelimit.NewMemoryStore(clk)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := store.Check(ctx, "ip-1", 3, time.Hour)
				if err == nil && res.Allowed {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 3, allowed)
	})
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(base)
	store := ratelimit.NewMemoryStore(clk)

	_, err := store.Check(ctx, "old", 3, 10*time.Minute)
	require.NoError(t, err)
	clk.Add(5 * time.Minute)
	_, err = store.Check(ctx, "fresh", 3, time.Hour)
	require.NoError(t, err)

	clk.Add(6 * time.Minute)
	removed := store.Sweep()

	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, store.Len())

	res, err := store.Check(ctx, "fresh", 3, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RemainingAttempts)
}

func TestMemoryStore_StartSweeperStop(t *testing.T) {
	clk := clock.NewMockClock(base)
	store := ratelimit.NewMemoryStore(clk)

	_, err := store.Check(context.Background(), "ip-1", 3, time.Minute)
	require.NoError(t, err)
	clk.Add(2 * time.Minute)

	store.StartSweeper(10 * time.Millisecond)
	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, store.Stop(ctx))
	require.NoError(t, store.Stop(ctx))
}

func TestMemoryStore_StopWithoutStart(t *testing.T) {
	store := ratelimit.NewMemoryStore(clock.NewMockClock(base))
	assert.NoError(t, store.Stop(context.Background()))
}

func TestPolicy_Check(t *testing.T) {
	clk := clock.NewMockClock(base)
	policy := ratelimit.Policy{
		Limiter:     ratelimit.NewMemoryStore(clk),
		MaxAttempts: 1,
		Window:      time.Minute,
	}

	first, err := policy.Check(context.Background(), "ip-1")
	require.NoError(t, err)
	second, err := policy.Check(context.Background(), "ip-1")
	require.NoError(t, err)

	assert.True(t, first.Allowed)
	assert.Equal(t, 0, first.RemainingAttempts)
	assert.False(t, second.Allowed)
}
