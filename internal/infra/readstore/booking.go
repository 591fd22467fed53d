package readstore

import (
	"context"
	"time"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewByIDRow, error)
	ListBookingsByCustomerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerFirstPageParams) ([]sqlc.ListBookingsByCustomerFirstPageRow, error)
	ListBookingsByCustomerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByCustomerKeysetParams) ([]sqlc.ListBookingsByCustomerKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}

	return &queries.BookingView{
		ID:              row.ID,
		TripID:          row.TripID,
		CustomerID:      row.CustomerID,
		StartDate:       pgconv.TimeFromPgDate(row.StartDate),
		EndDate:         pgconv.TimePtrFromPgDate(row.EndDate),
		Guests:          int(row.Guests),
		TotalPriceCents: total,
		Status:          row.Status,
		SpecialRequests: row.SpecialRequests,
		Trip: queries.BookingTripSummary{
			Title:         row.TripTitle,
			LocationName:  row.TripLocationName,
			Images:        nonNil(row.TripImages),
			DurationHours: int(row.TripDurationHours),
		},
		Customer: queries.BookingCustomerSummary{
			Name:  row.CustomerName,
			Email: row.CustomerEmail,
			Phone: pgconv.StringPtrFromPgtype(row.CustomerPhone),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) FindByCustomerFirstPage(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByCustomerFirstPage(ctx, r.db, sqlc.ListBookingsByCustomerFirstPageParams{
		CustomerID: customerID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings first page by customer", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(sqlc.ListBookingsByCustomerKeysetRow(row))
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *BookingReadStore) FindByCustomerKeyset(ctx context.Context, customerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.queries.ListBookingsByCustomerKeyset(ctx, r.db, sqlc.ListBookingsByCustomerKeysetParams{
		CustomerID: customerID,
		CreatedAt:  pgconv.TimeToPgtype(lastCreatedAt),
		ID:         lastID,
		Lim:        limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings keyset by customer", err)
	}

	items := make([]*queries.BookingListItem, 0, len(rows))
	for _, row := range rows {
		item, err := toBookingListItem(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toBookingListItem(row sqlc.ListBookingsByCustomerKeysetRow) (*queries.BookingListItem, error) {
	total, err := pgconv.CentsFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid booking total price", err)
	}
	return &queries.BookingListItem{
		ID:               row.ID,
		TripID:           row.TripID,
		TripTitle:        row.TripTitle,
		TripLocationName: row.TripLocationName,
		TripImages:       nonNil(row.TripImages),
		StartDate:        pgconv.TimeFromPgDate(row.StartDate),
		EndDate:          pgconv.TimePtrFromPgDate(row.EndDate),
		Guests:           int(row.Guests),
		TotalPriceCents:  total,
		Status:           row.Status,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
