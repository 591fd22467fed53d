package request

import (
	"math"
	"time"

	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/queries"
)

// SearchTripsQuery binds /trips/search query parameters. List filters are
// repeated parameters (boatType=a&boatType=b). Prices are in dollars.
type SearchTripsQuery struct {
	Location    string   `form:"location" binding:"max=100"`
	Guests      int      `form:"guests" binding:"omitempty,min=1,max=20"`
	StartDate   string   `form:"startDate"`
	EndDate     string   `form:"endDate"`
	PriceMin    *float64 `form:"priceMin" binding:"omitempty,min=0"`
	PriceMax    *float64 `form:"priceMax" binding:"omitempty,min=0"`
	BoatType    []string `form:"boatType"`
	FishingType []string `form:"fishingType"`
	Duration    []int    `form:"duration" binding:"omitempty,dive,min=1"`
	SortBy      string   `form:"sortBy" binding:"omitempty,oneof=price rating duration popularity createdAt"`
	SortOrder   string   `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
	Page        int      `form:"page" binding:"omitempty,min=1"`
	Limit       int      `form:"limit" binding:"omitempty,min=1,max=50"`
}

func (q *SearchTripsQuery) ToCriteria(today time.Time) (queries.TripSearchCriteria, []httperr.FieldError) {
	criteria := queries.TripSearchCriteria{
		Location:     q.Location,
		Guests:       q.Guests,
		MinPrice:     dollarsToCents(q.PriceMin),
		MaxPrice:     dollarsToCents(q.PriceMax),
		BoatTypes:    q.BoatType,
		FishingTypes: q.FishingType,
		Durations:    q.Duration,
		SortBy:       q.SortBy,
		SortOrder:    q.SortOrder,
		Page:         q.Page,
		Limit:        q.Limit,
	}

	var problems []httperr.FieldError
	if q.StartDate != "" {
		start, end, p := resolveStay(q.StartDate, q.EndDate, today)
		problems = append(problems, p...)
		criteria.StartDate = &start
		criteria.EndDate = end
	}
	if q.PriceMin != nil && q.PriceMax != nil && *q.PriceMin > *q.PriceMax {
		problems = append(problems, httperr.FieldError{Field: "priceMax", Message: "priceMax must be greater than or equal to priceMin"})
	}
	return criteria, problems
}

type TripReviewsQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=50"`
	SortBy string `form:"sortBy" binding:"omitempty,oneof=newest oldest highest lowest"`
	Rating *int   `form:"rating" binding:"omitempty,min=1,max=5"`
}

func (q *TripReviewsQuery) ToCriteria() queries.TripReviewsCriteria {
	return queries.TripReviewsCriteria{
		Rating: q.Rating,
		SortBy: q.SortBy,
		Page:   q.Page,
		Limit:  q.Limit,
	}
}

type FeaturedTripsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// KeysetQuery is the cursor pagination shared by the /user listings.
type KeysetQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}

func (q *KeysetQuery) Cursor() *queries.Cursor {
	if q.After == "" {
		return nil
	}
	return &queries.Cursor{After: q.After}
}

func dollarsToCents(v *float64) *int64 {
	if v == nil {
		return nil
	}
	cents := int64(math.Round(*v * 100))
	return &cents
}
