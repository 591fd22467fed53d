package review

import (
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	tripID        uuid.UUID
	userID        uuid.UUID
	bookingID     *uuid.UUID
	rating        Rating
	comment       Comment
	images        Images
	tripDate      time.Time
	needsApproval bool
	isApproved    bool
	createdAt     time.Time
	updatedAt     time.Time
}

type Draft struct {
	TripID    uuid.UUID
	UserID    uuid.UUID
	BookingID *uuid.UUID
	Rating    int
	Comment   string
	Images    []string
	TripDate  time.Time
}

// NewReview builds an approved review; HoldForApproval moves it to the
// manual moderation queue before it is stored.
func NewReview(d Draft, now time.Time) (*Review, error) {
	rating, err := NewRating(d.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(d.Comment)
	if err != nil {
		return nil, err
	}
	images, err := NewImages(d.Images)
	if err != nil {
		return nil, err
	}
	if d.TripDate.After(now) {
		return nil, ErrTripDateInFuture
	}

	return &Review{
		id:         uuid.New(),
		tripID:     d.TripID,
		userID:     d.UserID,
		bookingID:  d.BookingID,
		rating:     rating,
		comment:    comment,
		images:     images,
		tripDate:   clock.DateOf(d.TripDate),
		isApproved: true,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(
	id, tripID, userID uuid.UUID,
	bookingID *uuid.UUID,
	rating Rating,
	comment Comment,
	images Images,
	tripDate time.Time,
	needsApproval, isApproved bool,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		tripID:        tripID,
		userID:        userID,
		bookingID:     bookingID,
		rating:        rating,
		comment:       comment,
		images:        images,
		tripDate:      tripDate,
		needsApproval: needsApproval,
		isApproved:    isApproved,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (r *Review) HoldForApproval() {
	r.needsApproval = true
	r.isApproved = false
}

// Edit changes rating and/or comment. Only the author may edit.
func (r *Review) Edit(userID uuid.UUID, rating *int, comment *string, now time.Time) error {
	if r.userID != userID {
		return ErrNotOwner
	}
	if rating != nil {
		v, err := NewRating(*rating)
		if err != nil {
			return err
		}
		r.rating = v
	}
	if comment != nil {
		c, err := NewComment(*comment)
		if err != nil {
			return err
		}
		r.comment = c
	}
	r.updatedAt = now
	return nil
}

func (r *Review) CanBeDeletedBy(userID uuid.UUID, role customer.Role) bool {
	return r.userID == userID || role == customer.RoleAdmin
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) TripID() uuid.UUID     { return r.tripID }
func (r *Review) UserID() uuid.UUID     { return r.userID }
func (r *Review) BookingID() *uuid.UUID { return r.bookingID }
func (r *Review) Rating() Rating        { return r.rating }
func (r *Review) Comment() Comment      { return r.comment }
func (r *Review) Images() Images        { return r.images }
func (r *Review) TripDate() time.Time   { return r.tripDate }
func (r *Review) NeedsApproval() bool   { return r.needsApproval }
func (r *Review) IsApproved() bool      { return r.isApproved }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
