//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/repository"
	repositorymock "charter-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// RecalcTripRatingStats Tests
// =============================================================================

func TestRatingStatsRepository_RecalcTripRatingStats(t *testing.T) {
	ctx := context.Background()
	tripID := uuid.New()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRatingStatsQueries, uuid.UUID, *mockDBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: rating stats recalculated successfully",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, id uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcTripRatingStats(ctx, tx, id).Return(nil)
			},
			expectedError: false,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRatingStatsQueries, id uuid.UUID, tx *mockDBTX) {
				mock.EXPECT().RecalcTripRatingStats(ctx, tx, id).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRatingStatsQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRatingStatsRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, tripID, mockDB)

			err := repo.RecalcTripRatingStats(ctx, mockDB, tripID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
