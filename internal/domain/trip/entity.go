package trip

import (
	"time"

	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errs.New("max guests must be greater than zero")
	ErrInvalidBasePrice = errs.New("base price must be greater than zero")
	ErrInvalidDuration  = errs.New("duration must be greater than zero")
)

// Trip is read-only to booking and review flows. It is created by seeding or
// an admin tool, so the constructor only guards the fields those flows rely on.
type Trip struct {
	id            uuid.UUID
	title         string
	description   string
	location      Location
	durationHours int
	basePrice     Money
	images        []string
	inclusions    []string
	boatType      string
	fishingTypes  []string
	maxGuests     int
	createdAt     time.Time
	updatedAt     time.Time
}

type Attributes struct {
	Title         string
	Description   string
	Location      Location
	DurationHours int
	BasePrice     Money
	Images        []string
	Inclusions    []string
	BoatType      string
	FishingTypes  []string
	MaxGuests     int
}

func NewTrip(attrs Attributes, now time.Time) (*Trip, error) {
	if attrs.MaxGuests <= 0 {
		return nil, ErrInvalidCapacity
	}
	if attrs.BasePrice.IsZero() {
		return nil, ErrInvalidBasePrice
	}
	if attrs.DurationHours <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Trip{
		id:            uuid.New(),
		title:         attrs.Title,
		description:   attrs.Description,
		location:      attrs.Location,
		durationHours: attrs.DurationHours,
		basePrice:     attrs.BasePrice,
		images:        attrs.Images,
		inclusions:    attrs.Inclusions,
		boatType:      attrs.BoatType,
		fishingTypes:  attrs.FishingTypes,
		maxGuests:     attrs.MaxGuests,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(id uuid.UUID, attrs Attributes, createdAt, updatedAt time.Time) *Trip {
	return &Trip{
		id:            id,
		title:         attrs.Title,
		description:   attrs.Description,
		location:      attrs.Location,
		durationHours: attrs.DurationHours,
		basePrice:     attrs.BasePrice,
		images:        attrs.Images,
		inclusions:    attrs.Inclusions,
		boatType:      attrs.BoatType,
		fishingTypes:  attrs.FishingTypes,
		maxGuests:     attrs.MaxGuests,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (t *Trip) ID() uuid.UUID          { return t.id }
func (t *Trip) Title() string          { return t.title }
func (t *Trip) Description() string    { return t.description }
func (t *Trip) Location() Location     { return t.location }
func (t *Trip) DurationHours() int     { return t.durationHours }
func (t *Trip) BasePrice() Money       { return t.basePrice }
func (t *Trip) Images() []string       { return t.images }
func (t *Trip) Inclusions() []string   { return t.inclusions }
func (t *Trip) BoatType() string       { return t.boatType }
func (t *Trip) FishingTypes() []string { return t.fishingTypes }
func (t *Trip) MaxGuests() int         { return t.maxGuests }
func (t *Trip) CreatedAt() time.Time   { return t.createdAt }
func (t *Trip) UpdatedAt() time.Time   { return t.updatedAt }

func (t *Trip) Admits(guests int) bool {
	return guests <= t.maxGuests
}
