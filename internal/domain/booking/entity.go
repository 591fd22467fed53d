package booking

import (
	"fmt"
	"time"

	"charter-booking/internal/domain/trip"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/patch"

	"github.com/google/uuid"
)

const cancellationNotice = 24 * time.Hour

type Services struct {
	Clock           clock.Clock
	PriceCalculator PriceCalculator
}

type PriceCalculator interface {
	TotalPrice(t *trip.Trip, guests int) trip.Money
}

// DefaultPriceCalculator charges the base price per guest with no tax or discount.
type DefaultPriceCalculator struct{}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{}
}

func (DefaultPriceCalculator) TotalPrice(t *trip.Trip, guests int) trip.Money {
	return t.BasePrice().Times(guests)
}

type Booking struct {
	id              uuid.UUID
	tripID          uuid.UUID
	customerID      uuid.UUID
	dates           DateRange
	guests          int
	totalPrice      trip.Money
	status          Status
	specialRequests string
	paymentID       *string
	createdAt       time.Time
	updatedAt       time.Time
}

type Request struct {
	CustomerID      uuid.UUID
	Dates           DateRange
	Guests          int
	SpecialRequests string
}

// NewBooking runs the availability rules against existing and returns a
// PENDING booking priced for the requested guests.
func NewBooking(services *Services, t *trip.Trip, req Request, existing []*Booking) (*Booking, error) {
	if req.Guests < 1 {
		return nil, ErrInvalidGuests
	}
	if t == nil {
		return nil, rejected(ErrTripNotFound, ReasonTripNotFound)
	}
	if !t.Admits(req.Guests) {
		return nil, rejected(ErrCapacityExceeded, fmt.Sprintf("Maximum %d guests allowed for this trip", t.MaxGuests()))
	}
	if req.Dates.Start().Before(clock.Today(services.Clock)) {
		return nil, ErrStartInPast
	}
	if a := CheckAvailability(t, req.Dates, req.Guests, existing); !a.Available {
		return nil, rejected(ErrUnavailable, a.Reason)
	}

	now := services.Clock.Now()
	return &Booking{
		id:              uuid.New(),
		tripID:          t.ID(),
		customerID:      req.CustomerID,
		dates:           req.Dates,
		guests:          req.Guests,
		totalPrice:      services.PriceCalculator.TotalPrice(t, req.Guests),
		status:          StatusPending,
		specialRequests: req.SpecialRequests,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func Reconstruct(
	id, tripID, customerID uuid.UUID,
	dates DateRange,
	guests int,
	totalPrice trip.Money,
	status Status,
	specialRequests string,
	paymentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		tripID:          tripID,
		customerID:      customerID,
		dates:           dates,
		guests:          guests,
		totalPrice:      totalPrice,
		status:          status,
		specialRequests: specialRequests,
		paymentID:       paymentID,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

type Change struct {
	Dates  *DateRange
	Guests *int
}

func (c Change) IsEmpty() bool {
	return c.Dates == nil && c.Guests == nil
}

// Modify applies change after checking the booking can still be edited.
// others are the trip's bookings used for the conflict check; the booking
// itself is skipped.
func (b *Booking) Modify(services *Services, t *trip.Trip, change Change, others []*Booking) error {
	if !b.status.IsActive() {
		return ErrCannotModify
	}
	now := services.Clock.Now()
	if !b.dates.Start().After(now) {
		return ErrPastBooking
	}

	dates := b.dates
	if change.Dates != nil {
		if change.Dates.Start().Before(clock.Today(services.Clock)) {
			return ErrStartInPast
		}
		dates = *change.Dates
	}
	guests := patch.Coalesce(change.Guests, b.guests)
	if guests < 1 {
		return ErrInvalidGuests
	}

	if change.Guests != nil && !t.Admits(guests) {
		return rejected(ErrCapacityExceeded, fmt.Sprintf("Maximum %d guests allowed for this trip", t.MaxGuests()))
	}
	if change.Dates != nil && !dates.Equal(b.dates) {
		if a := check(t, dates, guests, others, b.id); !a.Available {
			return rejected(ErrUnavailable, a.Reason)
		}
	}

	b.dates = dates
	if patch.Changed(change.Guests, b.guests) {
		b.guests = guests
		b.totalPrice = services.PriceCalculator.TotalPrice(t, guests)
	}
	b.updatedAt = now
	return nil
}

func (b *Booking) Cancel(now time.Time) error {
	if !b.status.IsActive() {
		return ErrCannotCancel
	}
	if b.dates.Start().Sub(now) <= cancellationNotice {
		return ErrCancellationWindow
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsOwnedBy(customerID uuid.UUID) bool {
	return b.customerID == customerID
}

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) TripID() uuid.UUID       { return b.tripID }
func (b *Booking) CustomerID() uuid.UUID   { return b.customerID }
func (b *Booking) Dates() DateRange        { return b.dates }
func (b *Booking) Guests() int             { return b.guests }
func (b *Booking) TotalPrice() trip.Money  { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) SpecialRequests() string { return b.specialRequests }
func (b *Booking) PaymentID() *string      { return b.paymentID }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
func (b *Booking) IsActive() bool          { return b.status.IsActive() }
