//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/trip"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TripBuilder struct {
	ID             uuid.UUID
	Title          string
	Description    string
	LocationName   string
	Latitude       float64
	Longitude      float64
	DurationHours  int
	BasePriceCents int64
	Images         []string
	Inclusions     []string
	BoatType       string
	FishingTypes   []string
	MaxGuests      int
	CreatedAt      time.Time
}

func NewTripBuilder() *TripBuilder {
	return &TripBuilder{
		ID:             uuid.New(),
		Title:          "Sunrise Tarpon Run",
		Description:    "Half-day inshore trip chasing tarpon and snook.",
		LocationName:   "Key West, FL",
		Latitude:       24.5551,
		Longitude:      -81.78,
		DurationHours:  4,
		BasePriceCents: 25000,
		Images:         []string{"https://images.example.com/tarpon.jpg"},
		Inclusions:     []string{"Tackle", "Bait", "Licenses"},
		BoatType:       "Center Console",
		FishingTypes:   []string{"Inshore", "Fly"},
		MaxGuests:      6,
		CreatedAt:      time.Now().UTC(),
	}
}

func (b *TripBuilder) With(mutate func(*TripBuilder)) *TripBuilder {
	mutate(b)
	return b
}

func (b *TripBuilder) attributes() (trip.Attributes, error) {
	price, err := trip.NewMoney(b.BasePriceCents)
	if err != nil {
		return trip.Attributes{}, err
	}
	return trip.Attributes{
		Title:         b.Title,
		Description:   b.Description,
		Location:      trip.NewLocation(b.LocationName, b.Latitude, b.Longitude),
		DurationHours: b.DurationHours,
		BasePrice:     price,
		Images:        b.Images,
		Inclusions:    b.Inclusions,
		BoatType:      b.BoatType,
		FishingTypes:  b.FishingTypes,
		MaxGuests:     b.MaxGuests,
	}, nil
}

// Build methods
func (b *TripBuilder) BuildDomain() (*trip.Trip, error) {
	attrs, err := b.attributes()
	if err != nil {
		return nil, err
	}
	if _, err := trip.NewTrip(attrs, b.CreatedAt); err != nil {
		return nil, err
	}
	return trip.Reconstruct(b.ID, attrs, b.CreatedAt, b.CreatedAt), nil
}

func (b *TripBuilder) MustBuildDomain() *trip.Trip {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TripBuilder) BuildInfra() sqlc.Trips {
	return sqlc.Trips{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		LocationName:  b.LocationName,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		DurationHours: int32(b.DurationHours),
		BasePrice:     pgconv.NumericFromCents(b.BasePriceCents),
		Images:        b.Images,
		Inclusions:    b.Inclusions,
		BoatType:      b.BoatType,
		FishingTypes:  b.FishingTypes,
		MaxGuests:     int32(b.MaxGuests),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
	}
}

// Fluent builder methods
func (b *TripBuilder) WithID(id uuid.UUID) *TripBuilder {
	b.ID = id
	return b
}

func (b *TripBuilder) WithMaxGuests(n int) *TripBuilder {
	b.MaxGuests = n
	return b
}

func (b *TripBuilder) WithBasePriceCents(cents int64) *TripBuilder {
	b.BasePriceCents = cents
	return b
}
