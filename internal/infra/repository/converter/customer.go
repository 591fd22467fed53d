package converter

import (
	"charter-booking/internal/domain/customer"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func CustomerToUpsertParams(c *customer.Customer) sqlc.UpsertCustomerByEmailParams {
	return sqlc.UpsertCustomerByEmailParams{
		ID:        c.ID(),
		Email:     c.Email().Value(),
		Name:      c.Name().Value(),
		Phone:     phoneToPgtype(c.Phone()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func CustomerToRegisterParams(c *customer.Customer) sqlc.RegisterCustomerParams {
	return sqlc.RegisterCustomerParams{
		ID:           c.ID(),
		Email:        c.Email().Value(),
		Name:         c.Name().Value(),
		Phone:        phoneToPgtype(c.Phone()),
		PasswordHash: pgconv.StringPtrToPgtype(c.PasswordHash()),
		Role:         c.Role().String(),
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt()),
	}
}

func phoneToPgtype(p *customer.Phone) pgtype.Text {
	if p == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: p.Value(), Valid: true}
}
