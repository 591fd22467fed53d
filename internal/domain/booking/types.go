package booking

import (
	"errors"
	"fmt"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsActive reports whether a booking in this status holds its dates.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, v)
	}
	return s, nil
}

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidDateRange = errors.New("End date must be after or equal to start date")
	ErrInvalidGuests    = errors.New("At least 1 guest is required")

	ErrTripNotFound     = errors.New("Trip not found")
	ErrCapacityExceeded = errors.New("guest count exceeds trip capacity")
	ErrUnavailable      = errors.New("Trip is not available for the selected dates")

	ErrCannotModify       = errors.New("Cannot modify this booking")
	ErrPastBooking        = errors.New("Cannot modify past bookings")
	ErrStartInPast        = errors.New("Start date cannot be in the past")
	ErrCannotCancel       = errors.New("Cannot cancel this booking")
	ErrCancellationWindow = errors.New("Cannot cancel bookings less than 24 hours before start time")
)

// RejectedError carries the caller-facing reason for a refused booking while
// still matching the underlying sentinel with errors.Is.
type RejectedError struct {
	Reason string
	kind   error
}

func (e *RejectedError) Error() string { return e.Reason }
func (e *RejectedError) Unwrap() error { return e.kind }

func rejected(kind error, reason string) error {
	return &RejectedError{Reason: reason, kind: kind}
}
