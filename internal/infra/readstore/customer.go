package readstore

import (
	"context"

	"charter-booking/internal/infra"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadQueries interface {
	GetCustomerByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Customers, error)
}

type CustomerReadStore struct {
	queries CustomerReadQueries
	db      sqlc.DBTX
}

func NewCustomerReadStore(queries CustomerReadQueries, db sqlc.DBTX) *CustomerReadStore {
	return &CustomerReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	row, err := r.queries.GetCustomerByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer by id", err)
	}
	return &queries.CustomerView{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		Phone:     pgconv.StringPtrFromPgtype(row.Phone),
		Role:      row.Role,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
