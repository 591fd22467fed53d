//go:build unit

package trip_test

import (
	"testing"

	"charter-booking/internal/domain/trip"
	"charter-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*builder.TripBuilder)
		errIs  error
	}{
		{name: "valid", mutate: func(*builder.TripBuilder) {}},
		{name: "no capacity", mutate: func(b *builder.TripBuilder) { b.MaxGuests = 0 }, errIs: trip.ErrInvalidCapacity},
		{name: "free trip", mutate: func(b *builder.TripBuilder) { b.BasePriceCents = 0 }, errIs: trip.ErrInvalidBasePrice},
		{name: "negative price", mutate: func(b *builder.TripBuilder) { b.BasePriceCents = -100 }, errIs: trip.ErrNegativeMoney},
		{name: "no duration", mutate: func(b *builder.TripBuilder) { b.DurationHours = 0 }, errIs: trip.ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := builder.NewTripBuilder().With(tt.mutate).BuildDomain()
			if tt.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestTrip_Admits(t *testing.T) {
	tr := builder.NewTripBuilder().WithMaxGuests(6).MustBuildDomain()

	assert.True(t, tr.Admits(6))
	assert.False(t, tr.Admits(7))
}

func TestMoney(t *testing.T) {
	m, err := trip.MoneyFromDollars(19.99)
	require.NoError(t, err)
	assert.Equal(t, int64(1999), m.Cents())

	assert.InDelta(t, 900.0, trip.MustMoney(45000).Times(2).Dollars(), 0.001)
	assert.True(t, trip.MustMoney(0).IsZero())

	_, err = trip.MoneyFromDollars(-1)
	require.ErrorIs(t, err, trip.ErrNegativeMoney)
}
