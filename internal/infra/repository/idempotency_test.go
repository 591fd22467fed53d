//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-booking/internal/infra"
	"charter-booking/internal/infra/repository"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/shared"
	repositorymock "charter-booking/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdempotencyRepository_Find(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	key := uuid.New()
	bookingID := uuid.New()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockIdempotencyWriteQueries, *mockDBTX)
		want       *shared.IdempotencyRecord
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: live record",
			setupMock: func(mock *repositorymock.MockIdempotencyWriteQueries, tx *mockDBTX) {
				mock.EXPECT().GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
					Key:       key,
					ExpiresAt: pgconv.TimeToPgtype(now),
				}).Return(sqlc.IdempotencyKeys{
					Key:             key,
					Endpoint:        "POST /api/bookings",
					RequestHash:     "abc",
					ResultBookingID: bookingID,
					ExpiresAt:       pgconv.TimeToPgtype(now.Add(24 * time.Hour)),
				}, nil)
			},
			want: &shared.IdempotencyRecord{
				Key:             key,
				Endpoint:        "POST /api/bookings",
				RequestHash:     "abc",
				ResultBookingID: bookingID,
				ExpiresAt:       now.Add(24 * time.Hour),
			},
		},
		{
			name: "error: missing or expired key",
			setupMock: func(mock *repositorymock.MockIdempotencyWriteQueries, tx *mockDBTX) {
				mock.EXPECT().GetIdempotencyKey(ctx, tx, gomock.Any()).Return(sqlc.IdempotencyKeys{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database failure",
			setupMock: func(mock *repositorymock.MockIdempotencyWriteQueries, tx *mockDBTX) {
				mock.EXPECT().GetIdempotencyKey(ctx, tx, gomock.Any()).Return(sqlc.IdempotencyKeys{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			got, err := repo.Find(ctx, mockDB, key, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want.Key, got.Key)
			assert.Equal(t, tc.want.RequestHash, got.RequestHash)
			assert.Equal(t, tc.want.ResultBookingID, got.ResultBookingID)
			assert.True(t, tc.want.ExpiresAt.Equal(got.ExpiresAt))
		})
	}
}

func TestIdempotencyRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	rec := shared.IdempotencyRecord{
		Key:             uuid.New(),
		Endpoint:        "POST /api/bookings",
		RequestHash:     "abc",
		ResultBookingID: uuid.New(),
		ExpiresAt:       now.Add(24 * time.Hour),
	}

	testCases := []struct {
		name       string
		rows       int64
		dbErr      error
		wantSaved  bool
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: new key stored", rows: 1, wantSaved: true},
		{name: "success: live key is left alone", rows: 0, wantSaved: false},
		{name: "error: booking reference missing", dbErr: &pgconn.PgError{Code: "23503"}, expectKind: infra.KindForeignKeyViolated},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockIdempotencyWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewIdempotencyRepository(mockQueries, mockDB)

			mockQueries.EXPECT().SaveIdempotencyKey(ctx, mockDB, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.SaveIdempotencyKeyParams) (int64, error) {
					assert.Equal(t, rec.Key, arg.Key)
					assert.Equal(t, rec.ResultBookingID, arg.ResultBookingID)
					assert.True(t, now.Equal(arg.CreatedAt.Time))
					assert.True(t, rec.ExpiresAt.Equal(arg.ExpiresAt.Time))
					return tc.rows, tc.dbErr
				})

			saved, err := repo.Save(ctx, mockDB, rec, now)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSaved, saved)
		})
	}
}
