//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/trip"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID              uuid.UUID
	TripID          uuid.UUID
	CustomerID      uuid.UUID
	StartDate       time.Time
	EndDate         *time.Time
	Guests          int
	TotalPriceCents int64
	Status          string
	SpecialRequests string
	CreatedAt       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC()
	return &BookingBuilder{
		ID:              uuid.New(),
		TripID:          uuid.New(),
		CustomerID:      uuid.New(),
		StartDate:       clock.DateOf(now).AddDate(0, 0, 14),
		Guests:          2,
		TotalPriceCents: 50000,
		Status:          booking.StatusPending.String(),
		SpecialRequests: "",
		CreatedAt:       now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	dates, err := booking.NewDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(b.Status)
	if err != nil {
		return nil, err
	}
	price, err := trip.NewMoney(b.TotalPriceCents)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		b.ID, b.TripID, b.CustomerID,
		dates, b.Guests, price, status, b.SpecialRequests, nil,
		b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *BookingBuilder) MustBuildDomain() *booking.Booking {
	bk, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return bk
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:              b.ID,
		TripID:          b.TripID,
		CustomerID:      b.CustomerID,
		StartDate:       pgconv.DateToPgtype(b.StartDate),
		EndDate:         pgconv.DatePtrToPgtype(b.EndDate),
		Guests:          int32(b.Guests),
		TotalPrice:      pgconv.NumericFromCents(b.TotalPriceCents),
		Status:          b.Status,
		SpecialRequests: b.SpecialRequests,
		PaymentID:       pgtype.Text{Valid: false},
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:       pgconv.TimeToPgtype(b.CreatedAt),
	}
}

// Fluent builder methods
func (b *BookingBuilder) ForTrip(tripID uuid.UUID) *BookingBuilder {
	b.TripID = tripID
	return b
}

func (b *BookingBuilder) WithDates(start time.Time, end *time.Time) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.Guests = n
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s.String()
	return b
}
