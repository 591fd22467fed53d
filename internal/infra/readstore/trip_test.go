//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/readstore"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	readstoremock "charter-booking/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTripReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()
	createdAt := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockTripReadQueries)
		expectKind infra.RepositoryErrorKind
		check      func(*testing.T, *readstoremock.MockTripReadQueries)
	}{
		{
			name: "success: rating rounded and price in cents",
			setupMock: func(m *readstoremock.MockTripReadQueries) {
				m.EXPECT().GetTripDetail(ctx, gomock.Any(), tripID).Return(sqlc.GetTripDetailRow{
					ID:            tripID,
					Title:         "Offshore Tuna Run",
					LocationName:  "Montauk, NY",
					DurationHours: 8,
					BasePrice:     numeric(45000, -2),
					BoatType:      "Sportfisher",
					FishingTypes:  []string{"Offshore"},
					MaxGuests:     6,
					CreatedAt:     ts(createdAt),
					UpdatedAt:     ts(createdAt),
					Rating:        numeric(4666, -3),
					ReviewCount:   3,
					BookingCount:  12,
				}, nil)
			},
		},
		{
			name: "error: trip not found",
			setupMock: func(m *readstoremock.MockTripReadQueries) {
				m.EXPECT().GetTripDetail(ctx, gomock.Any(), tripID).Return(sqlc.GetTripDetailRow{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(m *readstoremock.MockTripReadQueries) {
				m.EXPECT().GetTripDetail(ctx, gomock.Any(), tripID).Return(sqlc.GetTripDetailRow{}, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: invalid base price",
			setupMock: func(m *readstoremock.MockTripReadQueries) {
				m.EXPECT().GetTripDetail(ctx, gomock.Any(), tripID).Return(sqlc.GetTripDetailRow{
					ID:        tripID,
					BasePrice: pgtype.Numeric{},
				}, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockTripReadQueries(ctrl)
			store := readstore.NewTripReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindByID(ctx, tripID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tripID, view.ID)
			assert.Equal(t, int64(45000), view.BasePriceCents)
			assert.Equal(t, 4.7, view.Rating)
			assert.Equal(t, 3, view.ReviewCount)
			assert.Equal(t, 12, view.BookingCount)
			assert.Equal(t, []string{}, view.Images, "nil arrays become empty")
			assert.Equal(t, createdAt, view.CreatedAt)
		})
	}
}

func TestTripReadStore_Featured(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	mockQueries := readstoremock.NewMockTripReadQueries(ctrl)
	store := readstore.NewTripReadStore(mockQueries, &mockDBTX{})

	first, second := uuid.New(), uuid.New()
	mockQueries.EXPECT().ListFeaturedTrips(ctx, gomock.Any(), int32(2)).Return([]sqlc.ListFeaturedTripsRow{
		{ID: first, BasePrice: numeric(30000, -2), BookingCount: 9},
		{ID: second, BasePrice: numeric(275, 0), BookingCount: 4},
	}, nil)

	views, err := store.Featured(ctx, 2)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first, views[0].ID)
	assert.Equal(t, int64(27500), views[1].BasePriceCents)
}

func TestTripReadStore_FilterOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTripReadQueries(ctrl)
		store := readstore.NewTripReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBoatTypes(ctx, gomock.Any()).Return([]string{"Center Console", "Sportfisher"}, nil)
		mockQueries.EXPECT().ListFishingTypes(ctx, gomock.Any()).Return(nil, nil)
		mockQueries.EXPECT().ListDurations(ctx, gomock.Any()).Return([]int32{4, 8}, nil)
		mockQueries.EXPECT().GetPriceRange(ctx, gomock.Any()).Return(sqlc.GetPriceRangeRow{
			MinPrice: numeric(15000, -2),
			MaxPrice: numeric(1200, 0),
		}, nil)

		opts, err := store.FilterOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Center Console", "Sportfisher"}, opts.BoatTypes)
		assert.Equal(t, []string{}, opts.FishingTypes)
		assert.Equal(t, []int{4, 8}, opts.Durations)
		assert.Equal(t, int64(15000), opts.MinPriceCents)
		assert.Equal(t, int64(120000), opts.MaxPriceCents)
	})

	t.Run("error: first failing query stops the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockTripReadQueries(ctrl)
		store := readstore.NewTripReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListBoatTypes(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		opts, err := store.FilterOptions(ctx)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, opts)
	})
}
