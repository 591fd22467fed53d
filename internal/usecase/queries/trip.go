package queries

import (
	"context"

	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/cache"
	"charter-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrTripNotFound = errs.New("trip not found")

const filterOptionsKey = "trips:filters"

type TripReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TripView, error)
	// Search returns one page of trips plus the total match count.
	Search(ctx context.Context, criteria TripSearchCriteria) ([]*TripView, int, error)
	Featured(ctx context.Context, limit int) ([]*TripView, error)
	FilterOptions(ctx context.Context) (*TripFilterOptions, error)
}

type TripQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TripView, error)
	Search(ctx context.Context, criteria TripSearchCriteria) (*TripSearchResult, error)
	Featured(ctx context.Context, limit int) ([]*TripView, error)
	FilterOptions(ctx context.Context) (*TripFilterOptions, error)
}

type tripQueriesImpl struct {
	store TripReadStore
	cache *cache.TTLCache[any]
}

func NewTripQueries(store TripReadStore, c *cache.TTLCache[any]) TripQueries {
	return &tripQueriesImpl{store: store, cache: c}
}

func (q *tripQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TripView, error) {
	trip, err := cache.Load(ctx, q.cache, cache.TripKey(id), func(ctx context.Context) (*TripView, error) {
		return q.store.FindByID(ctx, id)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (q *tripQueriesImpl) Search(ctx context.Context, criteria TripSearchCriteria) (*TripSearchResult, error) {
	criteria = NormalizeSearch(criteria)

	return cache.Load(ctx, q.cache, cache.TripsKey(criteria), func(ctx context.Context) (*TripSearchResult, error) {
		trips, total, err := q.store.Search(ctx, criteria)
		if err != nil {
			return nil, err
		}
		return &TripSearchResult{
			Trips:      trips,
			Pagination: NewPagination(criteria.Page, criteria.Limit, total),
		}, nil
	})
}

func (q *tripQueriesImpl) Featured(ctx context.Context, limit int) ([]*TripView, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	key := cache.TripsKey(map[string]int{"featured": limit})
	return cache.Load(ctx, q.cache, key, func(ctx context.Context) ([]*TripView, error) {
		return q.store.Featured(ctx, limit)
	})
}

func (q *tripQueriesImpl) FilterOptions(ctx context.Context) (*TripFilterOptions, error) {
	return cache.Load(ctx, q.cache, filterOptionsKey, q.store.FilterOptions)
}
