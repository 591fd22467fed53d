//go:build unit || e2e

package builder

import (
	"time"

	domreview "charter-booking/internal/domain/review"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	TripTitle     string
	UserID        uuid.UUID
	UserName      string
	BookingID     *uuid.UUID
	Rating        int
	Comment       string
	Images        []string
	TripDate      time.Time
	NeedsApproval bool
	IsApproved    bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().UTC()
	return &ReviewBuilder{
		ID:         uuid.New(),
		TripID:     uuid.New(),
		TripTitle:  "Sunrise Tarpon Run",
		UserID:     uuid.New(),
		UserName:   "Casey Angler",
		Rating:     5,
		Comment:    "Great captain, landed two tarpon before lunch.",
		Images:     []string{},
		TripDate:   clock.DateOf(now).AddDate(0, 0, -3),
		IsApproved: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

func (r *ReviewBuilder) Draft() domreview.Draft {
	return domreview.Draft{
		TripID:    r.TripID,
		UserID:    r.UserID,
		BookingID: r.BookingID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Images:    r.Images,
		TripDate:  r.TripDate,
	}
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.Draft(), r.CreatedAt)
}

// BuildStored returns the review as loaded from storage, keeping ID and flags.
func (r *ReviewBuilder) BuildStored() *domreview.Review {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		panic(err)
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		panic(err)
	}
	return domreview.Reconstruct(
		r.ID, r.TripID, r.UserID, r.BookingID,
		rating, comment, domreview.ImagesOf(r.Images), r.TripDate,
		r.NeedsApproval, r.IsApproved,
		r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	comment := pgtype.Text{String: r.Comment, Valid: r.Comment != ""}
	return sqlc.Reviews{
		ID:            r.ID,
		TripID:        r.TripID,
		UserID:        r.UserID,
		BookingID:     pgconv.UUIDPtrToPgtype(r.BookingID),
		Rating:        int32(r.Rating),
		Comment:       comment,
		Images:        r.Images,
		TripDate:      pgconv.DateToPgtype(r.TripDate),
		NeedsApproval: r.NeedsApproval,
		IsApproved:    r.IsApproved,
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt),
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithTripID(tripID uuid.UUID) *ReviewBuilder {
	r.TripID = tripID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Engine trouble, we barely left the dock."
	return r
}

func (r *ReviewBuilder) AsPendingApproval() *ReviewBuilder {
	r.NeedsApproval = true
	r.IsApproved = false
	return r
}
