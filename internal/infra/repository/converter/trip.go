package converter

import (
	"charter-booking/internal/domain/trip"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
)

func TripFromRow(row sqlc.Trips) (*trip.Trip, error) {
	cents, err := pgconv.CentsFromNumeric(row.BasePrice)
	if err != nil {
		return nil, err
	}
	price, err := trip.NewMoney(cents)
	if err != nil {
		return nil, err
	}
	return trip.Reconstruct(row.ID, trip.Attributes{
		Title:         row.Title,
		Description:   row.Description,
		Location:      trip.NewLocation(row.LocationName, row.Latitude, row.Longitude),
		DurationHours: int(row.DurationHours),
		BasePrice:     price,
		Images:        row.Images,
		Inclusions:    row.Inclusions,
		BoatType:      row.BoatType,
		FishingTypes:  row.FishingTypes,
		MaxGuests:     int(row.MaxGuests),
	}, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt)), nil
}
