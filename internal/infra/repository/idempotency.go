package repository

import (
	"context"
	"time"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	SaveIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.SaveIdempotencyKeyParams) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

// Find returns the unexpired record for key, or a NOT_FOUND repository error.
func (r *IdempotencyRepository) Find(ctx context.Context, tx sqlc.DBTX, key uuid.UUID, now time.Time) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{
		Key:       key,
		ExpiresAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &shared.IdempotencyRecord{
		Key:             row.Key,
		Endpoint:        row.Endpoint,
		RequestHash:     row.RequestHash,
		ResultBookingID: row.ResultBookingID,
		ExpiresAt:       pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

// Save stores rec, replacing an expired record under the same key. It reports
// false when a live record already holds the key.
func (r *IdempotencyRepository) Save(ctx context.Context, tx sqlc.DBTX, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	n, err := r.queries.SaveIdempotencyKey(ctx, tx, sqlc.SaveIdempotencyKeyParams{
		Key:             rec.Key,
		Endpoint:        rec.Endpoint,
		RequestHash:     rec.RequestHash,
		ResultBookingID: rec.ResultBookingID,
		CreatedAt:       pgconv.TimeToPgtype(now),
		ExpiresAt:       pgconv.TimeToPgtype(rec.ExpiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to save idempotency key", err)
	}
	return n == 1, nil
}
