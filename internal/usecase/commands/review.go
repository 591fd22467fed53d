package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/domain/moderation"
	domreview "charter-booking/internal/domain/review"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound  = errs.New("review not found")
	ErrReviewNotOwned  = errs.New("review not owned by user")
	ErrReviewRejected  = errs.New("Review content violates community guidelines")
	ErrTripNotFound    = errs.New("trip not found")
	ErrReportNotStored = errs.New("failed to report review")
)

// ModerationRejectedError is returned when moderation refuses a comment
// outright. It matches ErrReviewRejected.
type ModerationRejectedError struct {
	Reasons []string
}

func (e *ModerationRejectedError) Error() string { return ErrReviewRejected.Error() }
func (e *ModerationRejectedError) Unwrap() error { return ErrReviewRejected }

type CreateReviewRequest struct {
	TripID    uuid.UUID
	BookingID *uuid.UUID
	Rating    int
	Comment   string
	Images    []string
	TripDate  time.Time
}

type CreateReviewResult struct {
	ReviewID      uuid.UUID
	NeedsApproval bool
	Reasons       []string
}

type UpdateReviewRequest struct {
	Rating  *int
	Comment *string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole customer.Role) error
	ReportReview(ctx context.Context, reviewID uuid.UUID, reporterID uuid.UUID, reason string) error
}

type reviewCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache TripCacheInvalidator
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, cache TripCacheInvalidator) ReviewCommands {
	return &reviewCommandsImpl{uow: uow, clock: clk, cache: cache}
}

func (uc *reviewCommandsImpl) CreateReview(ctx context.Context, req CreateReviewRequest, userID uuid.UUID) (*CreateReviewResult, error) {
	rev, err := domreview.NewReview(domreview.Draft{
		TripID:    req.TripID,
		UserID:    userID,
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Images:    req.Images,
		TripDate:  req.TripDate,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	verdict, err := moderate(rev.Comment().String())
	if err != nil {
		return nil, err
	}
	var heldFor []string
	if verdict.decision == moderation.DecisionManualReview {
		rev.HoldForApproval()
		heldFor = verdict.reasons
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().TripByID(ctx, req.TripID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTripNotFound
			}
			return err
		}

		id, err := tx.Reviews().Create(ctx, tx.DB(), rev)
		if err != nil {
			return err
		}
		createdID = id
		return tx.RatingStats().RecalcTripRatingStats(ctx, tx.DB(), req.TripID)
	})
	if err != nil {
		return nil, err
	}

	uc.cache.InvalidateTrip(req.TripID)
	return &CreateReviewResult{
		ReviewID:      createdID,
		NeedsApproval: rev.NeedsApproval(),
		Reasons:       heldFor,
	}, nil
}

func (uc *reviewCommandsImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	var verdict moderationVerdict
	if req.Comment != nil {
		v, err := moderate(strings.TrimSpace(*req.Comment))
		if err != nil {
			return err
		}
		verdict = v
	}

	var tripID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := loadReview(ctx, tx.Reads(), reviewID)
		if err != nil {
			return err
		}
		tripID = rev.TripID()

		if err := rev.Edit(actorID, req.Rating, req.Comment, uc.clock.Now()); err != nil {
			if errs.Is(err, domreview.ErrNotOwner) {
				return ErrReviewNotOwned
			}
			return err
		}
		if verdict.decision == moderation.DecisionManualReview {
			rev.HoldForApproval()
		}

		if err := tx.Reviews().Update(ctx, tx.DB(), rev); err != nil {
			return err
		}
		return tx.RatingStats().RecalcTripRatingStats(ctx, tx.DB(), rev.TripID())
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateTrip(tripID)
	return nil
}

// DeleteReview lets authors remove their own reviews and admins remove any.
func (uc *reviewCommandsImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole customer.Role) error {
	var tripID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := loadReview(ctx, tx.Reads(), reviewID)
		if err != nil {
			return err
		}
		if !rev.CanBeDeletedBy(actorID, actorRole) {
			return ErrReviewNotOwned
		}
		tripID = rev.TripID()

		if err := tx.Reviews().Delete(ctx, tx.DB(), reviewID); err != nil {
			return err
		}
		return tx.RatingStats().RecalcTripRatingStats(ctx, tx.DB(), rev.TripID())
	})
	if err != nil {
		return err
	}

	uc.cache.InvalidateTrip(tripID)
	return nil
}

type reviewReportedEvent struct {
	ReviewID   uuid.UUID `json:"reviewId"`
	TripID     uuid.UUID `json:"tripId"`
	ReporterID uuid.UUID `json:"reporterId"`
	Reason     string    `json:"reason"`
	ReportedAt time.Time `json:"reportedAt"`
}

func (uc *reviewCommandsImpl) ReportReview(ctx context.Context, reviewID uuid.UUID, reporterID uuid.UUID, reason string) error {
	now := uc.clock.Now()
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rev, err := loadReview(ctx, tx.Reads(), reviewID)
		if err != nil {
			return err
		}

		if err := tx.ReviewReports().Create(ctx, tx.DB(), reviewID, reporterID, reason, now); err != nil {
			return err
		}

		payload, err := json.Marshal(reviewReportedEvent{
			ReviewID:   reviewID,
			TripID:     rev.TripID(),
			ReporterID: reporterID,
			Reason:     reason,
			ReportedAt: now.UTC(),
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode review report event")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), "review", shared.TopicReviewReported, payload, now)
	})
	if err != nil {
		if errs.Is(err, ErrReviewNotFound) {
			return err
		}
		return errs.Mark(err, ErrReportNotStored)
	}

	slog.Info("Review reported",
		"review_id", reviewID.String(),
		"reporter_id", reporterID.String(),
		"reason", reason)
	return nil
}

func loadReview(ctx context.Context, reads shared.CommandReads, reviewID uuid.UUID) (*domreview.Review, error) {
	rev, err := reads.ReviewByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rev, nil
}

type moderationVerdict struct {
	decision moderation.Decision
	reasons  []string
}

// moderate scores a comment; an empty comment is approved without scoring.
func moderate(comment string) (moderationVerdict, error) {
	if comment == "" {
		return moderationVerdict{decision: moderation.DecisionApprove}, nil
	}

	result := moderation.Moderate(comment)
	decision := moderation.Classify(result)
	if decision == moderation.DecisionReject {
		slog.Info("Review rejected by moderation", "reasons", result.Reasons, "confidence", result.Confidence)
		return moderationVerdict{}, &ModerationRejectedError{Reasons: result.Reasons}
	}
	return moderationVerdict{decision: decision, reasons: result.Reasons}, nil
}
