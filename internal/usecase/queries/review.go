package queries

import (
	"context"
	"time"

	"charter-booking/internal/pkg/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type ReviewReadStore interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID, criteria TripReviewsCriteria) ([]*TripReviewItem, error)
	CountByTrip(ctx context.Context, tripID uuid.UUID, rating *int) (int, error)
	TripRatingStats(ctx context.Context, tripID uuid.UUID) (*TripRatingStats, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*UserReviewItem, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*UserReviewItem, error)
}

type ReviewQueries interface {
	ListByTrip(ctx context.Context, tripID uuid.UUID, criteria TripReviewsCriteria) (*TripReviewsPage, error)
	ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*UserReviewItem, *Cursor, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
	cache *cache.TTLCache[any]
}

func NewReviewQueries(store ReviewReadStore, c *cache.TTLCache[any]) ReviewQueries {
	return &reviewQueriesImpl{store: store, cache: c}
}

// ListByTrip lists approved reviews of a trip together with its rating stats.
func (q *reviewQueriesImpl) ListByTrip(ctx context.Context, tripID uuid.UUID, criteria TripReviewsCriteria) (*TripReviewsPage, error) {
	criteria = NormalizeReviews(criteria)

	return cache.Load(ctx, q.cache, cache.ReviewsKey(tripID, criteria), func(ctx context.Context) (*TripReviewsPage, error) {
		var (
			items []*TripReviewItem
			total int
			stats *TripRatingStats
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			items, err = q.store.ListByTrip(gctx, tripID, criteria)
			return err
		})
		g.Go(func() error {
			var err error
			total, err = q.store.CountByTrip(gctx, tripID, criteria.Rating)
			return err
		})
		g.Go(func() error {
			var err error
			stats, err = q.store.TripRatingStats(gctx, tripID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		return &TripReviewsPage{
			Reviews:    items,
			Pagination: NewPagination(criteria.Page, criteria.Limit, total),
			Stats:      stats,
		}, nil
	})
}

func (q *reviewQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*UserReviewItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*UserReviewItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
