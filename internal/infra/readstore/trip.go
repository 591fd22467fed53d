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
	"github.com/jackc/pgx/v5/pgtype"
)

type TripReadQueries interface {
	GetTripDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetTripDetailRow, error)
	ListFeaturedTrips(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListFeaturedTripsRow, error)
	ListBoatTypes(ctx context.Context, db sqlc.DBTX) ([]string, error)
	ListFishingTypes(ctx context.Context, db sqlc.DBTX) ([]string, error)
	ListDurations(ctx context.Context, db sqlc.DBTX) ([]int32, error)
	GetPriceRange(ctx context.Context, db sqlc.DBTX) (sqlc.GetPriceRangeRow, error)
}

type TripReadStore struct {
	queries TripReadQueries
	db      sqlc.DBTX
}

func NewTripReadStore(queries TripReadQueries, db sqlc.DBTX) *TripReadStore {
	return &TripReadStore{
		queries: queries,
		db:      db,
	}
}

// tripRow is the shape of the dynamic search query.
type tripRow struct {
	ID            uuid.UUID      `db:"id"`
	Title         string         `db:"title"`
	Description   string         `db:"description"`
	LocationName  string         `db:"location_name"`
	Latitude      float64        `db:"latitude"`
	Longitude     float64        `db:"longitude"`
	DurationHours int32          `db:"duration_hours"`
	BasePrice     pgtype.Numeric `db:"base_price"`
	Images        []string       `db:"images"`
	Inclusions    []string       `db:"inclusions"`
	BoatType      string         `db:"boat_type"`
	FishingTypes  []string       `db:"fishing_types"`
	MaxGuests     int32          `db:"max_guests"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	Rating        pgtype.Numeric `db:"rating"`
	ReviewCount   int32          `db:"review_count"`
	BookingCount  int32          `db:"booking_count"`
}

func (r *TripReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TripView, error) {
	row, err := r.queries.GetTripDetail(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("trip not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get trip detail", err)
	}
	return toTripView(tripRow{
		ID:            row.ID,
		Title:         row.Title,
		Description:   row.Description,
		LocationName:  row.LocationName,
		Latitude:      row.Latitude,
		Longitude:     row.Longitude,
		DurationHours: row.DurationHours,
		BasePrice:     row.BasePrice,
		Images:        row.Images,
		Inclusions:    row.Inclusions,
		BoatType:      row.BoatType,
		FishingTypes:  row.FishingTypes,
		MaxGuests:     row.MaxGuests,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
		Rating:        row.Rating,
		ReviewCount:   row.ReviewCount,
		BookingCount:  row.BookingCount,
	})
}

func (r *TripReadStore) Search(ctx context.Context, criteria queries.TripSearchCriteria) ([]*queries.TripView, int, error) {
	query, args, err := buildTripSearchQuery(criteria).ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build trip search query", err)
	}
	var rows []tripRow
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search trips", err)
	}

	countQuery, countArgs, err := buildTripCountQuery(criteria).ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build trip count query", err)
	}
	var total int
	if err := pgxscan.Get(ctx, r.db, &total, countQuery, countArgs...); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count trips", err)
	}

	views := make([]*queries.TripView, 0, len(rows))
	for _, row := range rows {
		v, err := toTripView(row)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, v)
	}
	return views, total, nil
}

func (r *TripReadStore) Featured(ctx context.Context, limit int) ([]*queries.TripView, error) {
	rows, err := r.queries.ListFeaturedTrips(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list featured trips", err)
	}

	views := make([]*queries.TripView, 0, len(rows))
	for _, row := range rows {
		v, err := toTripView(tripRow{
			ID:            row.ID,
			Title:         row.Title,
			Description:   row.Description,
			LocationName:  row.LocationName,
			Latitude:      row.Latitude,
			Longitude:     row.Longitude,
			DurationHours: row.DurationHours,
			BasePrice:     row.BasePrice,
			Images:        row.Images,
			Inclusions:    row.Inclusions,
			BoatType:      row.BoatType,
			FishingTypes:  row.FishingTypes,
			MaxGuests:     row.MaxGuests,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
			Rating:        row.Rating,
			ReviewCount:   row.ReviewCount,
			BookingCount:  row.BookingCount,
		})
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *TripReadStore) FilterOptions(ctx context.Context) (*queries.TripFilterOptions, error) {
	boatTypes, err := r.queries.ListBoatTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list boat types", err)
	}
	fishingTypes, err := r.queries.ListFishingTypes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fishing types", err)
	}
	durations, err := r.queries.ListDurations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list durations", err)
	}
	priceRange, err := r.queries.GetPriceRange(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get price range", err)
	}

	minCents, err := pgconv.CentsFromNumeric(priceRange.MinPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid min price", err)
	}
	maxCents, err := pgconv.CentsFromNumeric(priceRange.MaxPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid max price", err)
	}

	opts := &queries.TripFilterOptions{
		BoatTypes:     nonNil(boatTypes),
		FishingTypes:  nonNil(fishingTypes),
		MinPriceCents: minCents,
		MaxPriceCents: maxCents,
		Durations:     make([]int, 0, len(durations)),
	}
	for _, d := range durations {
		opts.Durations = append(opts.Durations, int(d))
	}
	return opts, nil
}

func tripSelect(columns ...string) sq.SelectBuilder {
	return psql.Select(columns...).
		From("trips t").
		LeftJoin("trip_rating_stats s ON s.trip_id = t.id")
}

var tripColumns = []string{
	"t.id", "t.title", "t.description", "t.location_name", "t.latitude", "t.longitude",
	"t.duration_hours", "t.base_price", "t.images", "t.inclusions", "t.boat_type",
	"t.fishing_types", "t.max_guests", "t.created_at", "t.updated_at",
	"COALESCE(s.average_rating, 0)::numeric AS rating",
	"COALESCE(s.total_reviews, 0)::int AS review_count",
	"(SELECT count(*) FROM bookings b WHERE b.trip_id = t.id)::int AS booking_count",
}

var tripSortColumns = map[string]string{
	queries.SortByPrice:      "t.base_price",
	queries.SortByRating:     "rating",
	queries.SortByDuration:   "t.duration_hours",
	queries.SortByPopularity: "booking_count",
	queries.SortByCreatedAt:  "t.created_at",
}

// Same conflict rule as the availability checker, open-ended bookings included.
const tripBookedSQL = `NOT EXISTS (
	SELECT 1 FROM bookings b
	WHERE b.trip_id = t.id
	  AND b.status IN ('PENDING', 'CONFIRMED')
	  AND ((b.end_date IS NOT NULL AND b.start_date <= ? AND b.end_date >= ?)
	    OR (b.end_date IS NULL AND b.start_date <= ?))
)`

// buildTripSearchQuery expects criteria already passed through queries.NormalizeSearch.
func buildTripSearchQuery(c queries.TripSearchCriteria) sq.SelectBuilder {
	col, ok := tripSortColumns[c.SortBy]
	if !ok {
		col = tripSortColumns[queries.SortByCreatedAt]
	}
	dir := "DESC"
	if c.SortOrder == queries.SortAsc {
		dir = "ASC"
	}

	return applyTripFilters(tripSelect(tripColumns...), c).
		OrderBy(col+" "+dir, "t.id "+dir).
		Limit(uint64(c.Limit)).
		Offset(uint64(queries.Offset(c.Page, c.Limit)))
}

func buildTripCountQuery(c queries.TripSearchCriteria) sq.SelectBuilder {
	return applyTripFilters(psql.Select("count(*)").From("trips t"), c)
}

func applyTripFilters(b sq.SelectBuilder, c queries.TripSearchCriteria) sq.SelectBuilder {
	if c.Location != "" {
		b = b.Where(sq.ILike{"t.location_name": containsPattern(c.Location)})
	}
	if c.Guests > 0 {
		b = b.Where(sq.GtOrEq{"t.max_guests": c.Guests})
	}
	if c.MinPrice != nil {
		b = b.Where(sq.GtOrEq{"t.base_price": pgconv.NumericFromCents(*c.MinPrice)})
	}
	if c.MaxPrice != nil {
		b = b.Where(sq.LtOrEq{"t.base_price": pgconv.NumericFromCents(*c.MaxPrice)})
	}
	if len(c.BoatTypes) > 0 {
		b = b.Where(sq.Eq{"t.boat_type": c.BoatTypes})
	}
	if len(c.FishingTypes) > 0 {
		b = b.Where(sq.Expr("t.fishing_types && ?", c.FishingTypes))
	}
	if len(c.Durations) > 0 {
		b = b.Where(sq.Eq{"t.duration_hours": c.Durations})
	}
	if c.StartDate != nil {
		start := pgconv.DateToPgtype(*c.StartDate)
		end := start
		if c.EndDate != nil {
			end = pgconv.DateToPgtype(*c.EndDate)
		}
		b = b.Where(sq.Expr(tripBookedSQL, end, start, start))
	}
	return b
}

func toTripView(row tripRow) (*queries.TripView, error) {
	cents, err := pgconv.CentsFromNumeric(row.BasePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid trip base price", err)
	}
	return &queries.TripView{
		ID:             row.ID,
		Title:          row.Title,
		Description:    row.Description,
		LocationName:   row.LocationName,
		Latitude:       row.Latitude,
		Longitude:      row.Longitude,
		DurationHours:  int(row.DurationHours),
		BasePriceCents: cents,
		Images:         nonNil(row.Images),
		Inclusions:     nonNil(row.Inclusions),
		BoatType:       row.BoatType,
		FishingTypes:   nonNil(row.FishingTypes),
		MaxGuests:      int(row.MaxGuests),
		Rating:         pgconv.RoundTo1(pgconv.Float64FromNumeric(row.Rating)),
		ReviewCount:    int(row.ReviewCount),
		BookingCount:   int(row.BookingCount),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
