package repository

import (
	"context"
	"time"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewReportQueries interface {
	CreateReviewReport(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewReportParams) error
}

type ReviewReportRepository struct {
	queries ReviewReportQueries
	db      sqlc.DBTX
}

func NewReviewReportRepository(queries ReviewReportQueries, db sqlc.DBTX) *ReviewReportRepository {
	return &ReviewReportRepository{queries: queries, db: db}
}

func (r *ReviewReportRepository) Create(ctx context.Context, tx sqlc.DBTX, reviewID, reporterID uuid.UUID, reason string, at time.Time) error {
	params := sqlc.CreateReviewReportParams{
		ID:         uuid.New(),
		ReviewID:   reviewID,
		ReporterID: reporterID,
		Reason:     reason,
		CreatedAt:  pgconv.TimeToPgtype(at),
	}
	if err := r.queries.CreateReviewReport(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create review report", err)
	}
	return nil
}
