package booking

import (
	"fmt"

	"charter-booking/internal/domain/trip"

	"github.com/google/uuid"
)

const (
	ReasonTripNotFound = "Trip not found"
	ReasonUnavailable  = "Trip is not available for the selected dates"
)

func CapacityReason(maxGuests int) string {
	return fmt.Sprintf("Maximum %d guests allowed", maxGuests)
}

type Availability struct {
	Available bool
	Reason    string
}

// CheckAvailability decides whether guests can book t for candidate given the
// trip's existing bookings. t is nil when the trip does not exist. Bookings
// that are not active are ignored, so callers may pass an unfiltered list.
func CheckAvailability(t *trip.Trip, candidate DateRange, guests int, existing []*Booking) Availability {
	return check(t, candidate, guests, existing, uuid.Nil)
}

func check(t *trip.Trip, candidate DateRange, guests int, existing []*Booking, skip uuid.UUID) Availability {
	if t == nil {
		return Availability{Reason: ReasonTripNotFound}
	}
	if !t.Admits(guests) {
		return Availability{Reason: CapacityReason(t.MaxGuests())}
	}
	for _, b := range existing {
		if b == nil || b.id == skip || b.tripID != t.ID() || !b.status.IsActive() {
			continue
		}
		if b.dates.ConflictsWith(candidate) {
			return Availability{Reason: ReasonUnavailable}
		}
	}
	return Availability{Available: true}
}
