package repository

import (
	"context"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcTripRatingStats(ctx context.Context, db sqlc.DBTX, tripID uuid.UUID) error
}

type RatingStatsRepository struct {
	q  RatingStatsQueries
	db sqlc.DBTX
}

func NewRatingStatsRepository(q RatingStatsQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{q: q, db: db}
}

// RecalcTripRatingStats rebuilds the aggregate row from approved reviews.
func (r *RatingStatsRepository) RecalcTripRatingStats(ctx context.Context, tx sqlc.DBTX, tripID uuid.UUID) error {
	if err := r.q.RecalcTripRatingStats(ctx, tx, tripID); err != nil {
		return infra.WrapRepoErr("failed to recalculate trip rating stats", err)
	}
	return nil
}
