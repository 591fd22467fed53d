package response

import (
	"time"

	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type TripResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	LocationName  string    `json:"locationName"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	DurationHours int       `json:"duration"`
	BasePrice     float64   `json:"basePrice"`
	Images        []string  `json:"images"`
	Inclusions    []string  `json:"inclusions"`
	BoatType      string    `json:"boatType"`
	FishingTypes  []string  `json:"fishingTypes"`
	MaxGuests     int       `json:"maxGuests"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	BookingCount  int       `json:"bookingCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// BasePriceCents receives TripView.BasePriceCents during copying.
func (r *TripResponse) BasePriceCents(cents int64) {
	r.BasePrice = centsToDollars(cents)
}

func FromTripView(v *queries.TripView) *TripResponse {
	var res TripResponse
	mustCopy(&res, v)
	return &res
}

func FromTripViews(views []*queries.TripView) []*TripResponse {
	res := make([]*TripResponse, len(views))
	for i, v := range views {
		res[i] = FromTripView(v)
	}
	return res
}

type TripSearchResponse struct {
	Trips      []*TripResponse    `json:"trips"`
	Pagination PaginationResponse `json:"pagination"`
}

func FromTripSearch(r *queries.TripSearchResult) *TripSearchResponse {
	res := &TripSearchResponse{Trips: FromTripViews(r.Trips)}
	mustCopy(&res.Pagination, &r.Pagination)
	return res
}

type TripFiltersResponse struct {
	BoatTypes    []string   `json:"boatTypes"`
	FishingTypes []string   `json:"fishingTypes"`
	PriceRange   [2]float64 `json:"priceRange"`
	Durations    []int      `json:"durations"`
}

func FromTripFilterOptions(o *queries.TripFilterOptions) *TripFiltersResponse {
	return &TripFiltersResponse{
		BoatTypes:    o.BoatTypes,
		FishingTypes: o.FishingTypes,
		PriceRange:   [2]float64{centsToDollars(o.MinPriceCents), centsToDollars(o.MaxPriceCents)},
		Durations:    o.Durations,
	}
}
