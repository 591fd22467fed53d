package queries

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// TripView is a trip with its aggregated popularity figures.
type TripView struct {
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
	Rating         float64
	ReviewCount    int
	BookingCount   int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TripSearchCriteria struct {
	Location     string
	Guests       int
	StartDate    *time.Time
	EndDate      *time.Time
	MinPrice     *int64
	MaxPrice     *int64
	BoatTypes    []string
	FishingTypes []string
	Durations    []int
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

type TripSearchResult struct {
	Trips      []*TripView
	Pagination Pagination
}

type TripFilterOptions struct {
	BoatTypes     []string
	FishingTypes  []string
	MinPriceCents int64
	MaxPriceCents int64
	Durations     []int
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int
	Limit       int
	HasNextPage bool
	HasPrevPage bool
}

func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalCount) / float64(limit)))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}

type BookingTripSummary struct {
	Title         string
	LocationName  string
	Images        []string
	DurationHours int
}

type BookingCustomerSummary struct {
	Name  string
	Email string
	Phone *string
}

type BookingView struct {
	ID              uuid.UUID
	TripID          uuid.UUID
	CustomerID      uuid.UUID
	StartDate       time.Time
	EndDate         *time.Time
	Guests          int
	TotalPriceCents int64
	Status          string
	SpecialRequests string
	Trip            BookingTripSummary
	Customer        BookingCustomerSummary
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BookingListItem struct {
	ID               uuid.UUID
	TripID           uuid.UUID
	TripTitle        string
	TripLocationName string
	TripImages       []string
	StartDate        time.Time
	EndDate          *time.Time
	Guests           int
	TotalPriceCents  int64
	Status           string
	CreatedAt        time.Time
}

// TripReviewItem is a public review; only the author's display name is exposed.
type TripReviewItem struct {
	ID        uuid.UUID
	Rating    int
	Comment   *string
	Images    []string
	TripDate  time.Time
	UserName  string
	CreatedAt time.Time
}

type UserReviewItem struct {
	ID            uuid.UUID
	TripID        uuid.UUID
	TripTitle     string
	Rating        int
	Comment       *string
	Images        []string
	TripDate      time.Time
	NeedsApproval bool
	IsApproved    bool
	CreatedAt     time.Time
}

type TripRatingStats struct {
	TotalReviews  int
	AverageRating float64
	// Distribution is keyed by star rating 1..5; every key is present.
	Distribution map[int]int
}

func EmptyRatingStats() *TripRatingStats {
	return &TripRatingStats{Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
}

type TripReviewsCriteria struct {
	Rating *int
	SortBy string
	Page   int
	Limit  int
}

type TripReviewsPage struct {
	Reviews    []*TripReviewItem
	Pagination Pagination
	Stats      *TripRatingStats
}

type CustomerView struct {
	ID        uuid.UUID
	Email     string
	Name      string
	Phone     *string
	Role      string
	CreatedAt time.Time
}
