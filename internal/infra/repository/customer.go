package repository

import (
	"context"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/infra"
	"charter-booking/internal/infra/repository/converter"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	UpsertCustomerByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCustomerByEmailParams) (uuid.UUID, error)
	RegisterCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.RegisterCustomerParams) (uuid.UUID, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

// UpsertByContact keeps one customer row per email; name and phone are
// refreshed from the latest booking.
func (r *CustomerRepository) UpsertByContact(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.UpsertCustomerByEmail(ctx, tx, converter.CustomerToUpsertParams(c))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert customer", err)
	}
	return id, nil
}

// Register claims a booking-only customer row or inserts a new one. An email
// that already carries a password yields no row.
func (r *CustomerRepository) Register(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) (uuid.UUID, error) {
	id, err := r.queries.RegisterCustomer(ctx, tx, converter.CustomerToRegisterParams(c))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to register customer", err)
	}
	return id, nil
}
