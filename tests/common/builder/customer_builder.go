//go:build unit || e2e

package builder

import (
	"time"

	"charter-booking/internal/domain/customer"
	sqlc "charter-booking/internal/infra/sqlc/generated"
	"charter-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CustomerBuilder struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Phone        string
	PasswordHash *string
	Role         string
	CreatedAt    time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:        uuid.New(),
		Email:     "angler@example.com",
		Name:      "Casey Angler",
		Phone:     "+1 305 555 0100",
		Role:      customer.RoleCustomer.String(),
		CreatedAt: time.Now().UTC(),
	}
}

func (c *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(c)
	return c
}

// Build methods
func (c *CustomerBuilder) BuildContact() (customer.ContactInfo, error) {
	return customer.NewContactInfo(c.Name, c.Email, c.Phone)
}

func (c *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}
	name, err := customer.NewName(c.Name)
	if err != nil {
		return nil, err
	}
	role, err := customer.NewRole(c.Role)
	if err != nil {
		return nil, err
	}
	var phone *customer.Phone
	if c.Phone != "" {
		p, err := customer.NewPhone(c.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}
	return customer.Reconstruct(c.ID, email, name, phone, c.PasswordHash, role, c.CreatedAt, c.CreatedAt), nil
}

func (c *CustomerBuilder) BuildInfra() sqlc.Customers {
	return sqlc.Customers{
		ID:           c.ID,
		Email:        c.Email,
		Name:         c.Name,
		Phone:        pgtype.Text{String: c.Phone, Valid: c.Phone != ""},
		PasswordHash: pgconv.StringPtrToPgtype(c.PasswordHash),
		Role:         c.Role,
		CreatedAt:    pgconv.TimeToPgtype(c.CreatedAt),
		UpdatedAt:    pgconv.TimeToPgtype(c.CreatedAt),
	}
}

// Fluent builder methods
func (c *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	c.Email = email
	return c
}

func (c *CustomerBuilder) WithPasswordHash(hash string) *CustomerBuilder {
	c.PasswordHash = &hash
	return c
}

func (c *CustomerBuilder) WithRole(role customer.Role) *CustomerBuilder {
	c.Role = role.String()
	return c
}
