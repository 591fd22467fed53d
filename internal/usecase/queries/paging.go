package queries

const (
	DefaultSearchLimit   = 12
	DefaultReviewLimit   = 10
	DefaultFeaturedLimit = 8
	MaxPageLimit         = 50
)

// Sort keys accepted by trip search.
const (
	SortByPrice      = "price"
	SortByRating     = "rating"
	SortByDuration   = "duration"
	SortByPopularity = "popularity"
	SortByCreatedAt  = "createdAt"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Sort keys accepted by trip review listings.
const (
	ReviewSortNewest  = "newest"
	ReviewSortOldest  = "oldest"
	ReviewSortHighest = "highest"
	ReviewSortLowest  = "lowest"
)

func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}

// Offset is the row offset of a 1-based page.
func Offset(page, limit int) int {
	return (page - 1) * limit
}

func NormalizeSearch(c TripSearchCriteria) TripSearchCriteria {
	c.Page, c.Limit = normalizePage(c.Page, c.Limit, DefaultSearchLimit)
	switch c.SortBy {
	case SortByPrice, SortByRating, SortByDuration, SortByPopularity, SortByCreatedAt:
	default:
		c.SortBy = SortByCreatedAt
	}
	if c.SortOrder != SortAsc {
		c.SortOrder = SortDesc
	}
	if c.Guests < 1 {
		c.Guests = 1
	}
	if c.StartDate != nil && c.EndDate == nil {
		c.EndDate = c.StartDate
	}
	return c
}

func NormalizeReviews(c TripReviewsCriteria) TripReviewsCriteria {
	c.Page, c.Limit = normalizePage(c.Page, c.Limit, DefaultReviewLimit)
	switch c.SortBy {
	case ReviewSortNewest, ReviewSortOldest, ReviewSortHighest, ReviewSortLowest:
	default:
		c.SortBy = ReviewSortNewest
	}
	return c
}
