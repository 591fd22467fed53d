package customer

import (
	"time"

	"github.com/google/uuid"
)

// Customer is created either by a booking (no password) or by registration.
// Registration on an email that already booked claims the existing record.
type Customer struct {
	id           uuid.UUID
	email        Email
	name         Name
	phone        *Phone
	passwordHash *string
	role         Role
	createdAt    time.Time
	updatedAt    time.Time
}

func NewFromContact(info ContactInfo, now time.Time) *Customer {
	phone := info.Phone()
	return &Customer{
		id:        uuid.New(),
		email:     info.Email(),
		name:      info.Name(),
		phone:     &phone,
		role:      RoleCustomer,
		createdAt: now,
		updatedAt: now,
	}
}

func NewRegistered(email Email, name Name, phone *Phone, passwordHash string, now time.Time) *Customer {
	return &Customer{
		id:           uuid.New(),
		email:        email,
		name:         name,
		phone:        phone,
		passwordHash: &passwordHash,
		role:         RoleCustomer,
		createdAt:    now,
		updatedAt:    now,
	}
}

func Reconstruct(id uuid.UUID, email Email, name Name, phone *Phone, passwordHash *string, role Role, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:           id,
		email:        email,
		name:         name,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID         { return c.id }
func (c *Customer) Email() Email          { return c.email }
func (c *Customer) Name() Name            { return c.name }
func (c *Customer) Phone() *Phone         { return c.phone }
func (c *Customer) PasswordHash() *string { return c.passwordHash }
func (c *Customer) Role() Role            { return c.role }
func (c *Customer) CreatedAt() time.Time  { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time  { return c.updatedAt }

func (c *Customer) HasPassword() bool {
	return c.passwordHash != nil && *c.passwordHash != ""
}
