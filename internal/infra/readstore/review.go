package readstore

import (
	"context"
	"time"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type ReviewReadQueries interface {
	ListReviewsByUserFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByUserFirstPageParams) ([]sqlc.ListReviewsByUserFirstPageRow, error)
	ListReviewsByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByUserKeysetParams) ([]sqlc.ListReviewsByUserKeysetRow, error)
	GetTripRatingStats(ctx context.Context, db sqlc.DBTX, tripID uuid.UUID) (sqlc.TripRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewReadQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewReadQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

type tripReviewRow struct {
	ID        uuid.UUID `db:"id"`
	Rating    int32     `db:"rating"`
	Comment   *string   `db:"comment"`
	Images    []string  `db:"images"`
	TripDate  time.Time `db:"trip_date"`
	CreatedAt time.Time `db:"created_at"`
	UserName  string    `db:"user_name"`
}

var reviewSortOrders = map[string][]string{
	queries.ReviewSortNewest:  {"r.created_at DESC", "r.id DESC"},
	queries.ReviewSortOldest:  {"r.created_at ASC", "r.id ASC"},
	queries.ReviewSortHighest: {"r.rating DESC", "r.created_at DESC", "r.id DESC"},
	queries.ReviewSortLowest:  {"r.rating ASC", "r.created_at DESC", "r.id DESC"},
}

// ListByTrip pages through the approved reviews of a trip. Criteria must be normalized.
func (r *ReviewReadStore) ListByTrip(ctx context.Context, tripID uuid.UUID, criteria queries.TripReviewsCriteria) ([]*queries.TripReviewItem, error) {
	query, args, err := buildTripReviewsQuery(tripID, criteria).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build trip reviews query", err)
	}

	var rows []tripReviewRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to list trip reviews", err)
	}

	items := make([]*queries.TripReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.TripReviewItem{
			ID:        row.ID,
			Rating:    int(row.Rating),
			Comment:   row.Comment,
			Images:    nonNil(row.Images),
			TripDate:  row.TripDate,
			UserName:  row.UserName,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *ReviewReadStore) CountByTrip(ctx context.Context, tripID uuid.UUID, rating *int) (int, error) {
	query, args, err := tripReviewsWhere(psql.Select("count(*)").From("reviews r"), tripID, rating).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build trip review count query", err)
	}

	var total int
	if err := pgxscan.Get(ctx, r.db, &total, query, args...); err != nil {
		return 0, infra.WrapRepoErr("failed to count trip reviews", err)
	}
	return total, nil
}

func (r *ReviewReadStore) TripRatingStats(ctx context.Context, tripID uuid.UUID) (*queries.TripRatingStats, error) {
	row, err := r.queries.GetTripRatingStats(ctx, r.db, tripID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// no approved review yet
			return queries.EmptyRatingStats(), nil
		}
		return nil, infra.WrapRepoErr("failed to get trip rating stats", err)
	}
	return &queries.TripRatingStats{
		TotalReviews:  int(row.TotalReviews),
		AverageRating: pgconv.RoundTo1(pgconv.Float64FromNumeric(row.AverageRating)),
		Distribution: map[int]int{
			1: int(row.Rating1Count),
			2: int(row.Rating2Count),
			3: int(row.Rating3Count),
			4: int(row.Rating4Count),
			5: int(row.Rating5Count),
		},
	}, nil
}

func (r *ReviewReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.UserReviewItem, error) {
	rows, err := r.queries.ListReviewsByUserFirstPage(ctx, r.db, sqlc.ListReviewsByUserFirstPageParams{
		UserID: userID,
		Lim:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews first page by user", err)
	}

	items := make([]*queries.UserReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toUserReviewItem(sqlc.ListReviewsByUserKeysetRow(row)))
	}
	return items, nil
}

func (r *ReviewReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.UserReviewItem, error) {
	rows, err := r.queries.ListReviewsByUserKeyset(ctx, r.db, sqlc.ListReviewsByUserKeysetParams{
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Lim:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews keyset by user", err)
	}

	items := make([]*queries.UserReviewItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, toUserReviewItem(row))
	}
	return items, nil
}

func buildTripReviewsQuery(tripID uuid.UUID, c queries.TripReviewsCriteria) sq.SelectBuilder {
	order, ok := reviewSortOrders[c.SortBy]
	if !ok {
		order = reviewSortOrders[queries.ReviewSortNewest]
	}

	b := psql.Select(
		"r.id", "r.rating", "r.comment", "r.images", "r.trip_date", "r.created_at",
		"c.name AS user_name",
	).
		From("reviews r").
		Join("customers c ON c.id = r.user_id")

	return tripReviewsWhere(b, tripID, c.Rating).
		OrderBy(order...).
		Limit(uint64(c.Limit)).
		Offset(uint64(queries.Offset(c.Page, c.Limit)))
}

func tripReviewsWhere(b sq.SelectBuilder, tripID uuid.UUID, rating *int) sq.SelectBuilder {
	b = b.Where(sq.Eq{"r.trip_id": tripID}).Where("r.is_approved")
	if rating != nil {
		b = b.Where(sq.Eq{"r.rating": *rating})
	}
	return b
}

func toUserReviewItem(row sqlc.ListReviewsByUserKeysetRow) *queries.UserReviewItem {
	return &queries.UserReviewItem{
		ID:            row.ID,
		TripID:        row.TripID,
		TripTitle:     row.TripTitle,
		Rating:        int(row.Rating),
		Comment:       pgconv.StringPtrFromPgtype(row.Comment),
		Images:        nonNil(row.Images),
		TripDate:      pgconv.TimeFromPgDate(row.TripDate),
		NeedsApproval: row.NeedsApproval,
		IsApproved:    row.IsApproved,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
