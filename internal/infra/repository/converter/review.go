package converter

import (
	"charter-booking/internal/domain/review"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/pkg/ptr"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:            r.ID(),
		TripID:        r.TripID(),
		UserID:        r.UserID(),
		BookingID:     pgconv.UUIDPtrToPgtype(r.BookingID()),
		Rating:        int32(r.Rating().Value()),
		Comment:       commentToPgtype(r.Comment()),
		Images:        r.Images().URLs(),
		TripDate:      pgconv.DateToPgtype(r.TripDate()),
		NeedsApproval: r.NeedsApproval(),
		IsApproved:    r.IsApproved(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:            r.ID(),
		Rating:        int32(r.Rating().Value()),
		Comment:       commentToPgtype(r.Comment()),
		NeedsApproval: r.NeedsApproval(),
		IsApproved:    r.IsApproved(),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment.String)
	if err != nil {
		return nil, err
	}
	return review.Reconstruct(
		row.ID,
		row.TripID,
		row.UserID,
		pgconv.UUIDPtrFromPgtype(row.BookingID),
		rating,
		comment,
		review.ImagesOf(row.Images),
		pgconv.TimeFromPgDate(row.TripDate),
		row.NeedsApproval,
		row.IsApproved,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func commentToPgtype(c review.Comment) pgtype.Text {
	return pgconv.StringPtrToPgtype(ptr.NilIfZero(c.String()))
}
