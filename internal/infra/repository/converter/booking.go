package converter

import (
	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/trip"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	dates := b.Dates()
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		TripID:          b.TripID(),
		CustomerID:      b.CustomerID(),
		StartDate:       pgconv.DateToPgtype(dates.Start()),
		EndDate:         pgconv.DatePtrToPgtype(dates.End()),
		Guests:          int32(b.Guests()),
		TotalPrice:      pgconv.NumericFromCents(b.TotalPrice().Cents()),
		Status:          b.Status().String(),
		SpecialRequests: b.SpecialRequests(),
		CreatedAt:       pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingToUpdateParams(b *booking.Booking) sqlc.UpdateBookingParams {
	dates := b.Dates()
	return sqlc.UpdateBookingParams{
		ID:         b.ID(),
		StartDate:  pgconv.DateToPgtype(dates.Start()),
		EndDate:    pgconv.DatePtrToPgtype(dates.End()),
		Guests:     int32(b.Guests()),
		TotalPrice: pgconv.NumericFromCents(b.TotalPrice().Cents()),
		Status:     b.Status().String(),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	dates, err := booking.NewDateRange(pgconv.TimeFromPgDate(row.StartDate), pgconv.TimePtrFromPgDate(row.EndDate))
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	cents, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	price, err := trip.NewMoney(cents)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		row.ID,
		row.TripID,
		row.CustomerID,
		dates,
		int(row.Guests),
		price,
		status,
		row.SpecialRequests,
		pgconv.StringPtrFromPgtype(row.PaymentID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
