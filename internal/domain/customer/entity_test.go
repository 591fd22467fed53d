//go:build unit

package customer_test

import (
	"strings"
	"testing"
	"time"

	"charter-booking/internal/domain/customer"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(customer.Customer{}),
	cmpopts.EquateEmpty(),
}

func TestNewContactInfo(t *testing.T) {
	tests := []struct {
		name  string
		input [3]string
		errIs error
	}{
		{name: "valid", input: [3]string{"Sam Angler", "sam@example.com", "+1 305 555 0100"}},
		{name: "email is trimmed", input: [3]string{"Sam", "  sam@example.com ", "3055550100"}},
		{name: "empty name", input: [3]string{"   ", "sam@example.com", "3055550100"}, errIs: customer.ErrInvalidName},
		{name: "long name", input: [3]string{strings.Repeat("n", 101), "sam@example.com", "3055550100"}, errIs: customer.ErrInvalidName},
		{name: "missing at sign", input: [3]string{"Sam", "sam.example.com", "3055550100"}, errIs: customer.ErrInvalidEmail},
		{name: "missing tld", input: [3]string{"Sam", "sam@example", "3055550100"}, errIs: customer.ErrInvalidEmail},
		{name: "short phone", input: [3]string{"Sam", "sam@example.com", "555-0100"}, errIs: customer.ErrInvalidPhone},
		{name: "long phone", input: [3]string{"Sam", "sam@example.com", strings.Repeat("5", 21)}, errIs: customer.ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := customer.NewContactInfo(tt.input[0], tt.input[1], tt.input[2])
			if tt.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestNewFromContact(t *testing.T) {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	info, err := customer.NewContactInfo(" Sam Angler ", "Sam@Example.COM", "+1 305 555 0100")
	require.NoError(t, err)

	actual := customer.NewFromContact(info, now)

	phone, _ := customer.NewPhone("+1 305 555 0100")
	expected := customer.Reconstruct(actual.ID(), info.Email(), info.Name(), &phone, nil, customer.RoleCustomer, now, now)
	if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
		t.Errorf("Customer mismatch (-want +got):\n%s", diff)
	}

	assert.NotEqual(t, uuid.Nil, actual.ID())
	assert.Equal(t, "sam@example.com", actual.Email().Value())
	assert.Equal(t, "Sam Angler", actual.Name().Value())
	assert.False(t, actual.HasPassword())
}

func TestNewRegistered(t *testing.T) {
	email, err := customer.NewEmail("sam@example.com")
	require.NoError(t, err)
	name, err := customer.NewName("Sam")
	require.NoError(t, err)

	actual := customer.NewRegistered(email, name, nil, "$2a$10$hash", time.Now())

	assert.True(t, actual.HasPassword())
	assert.Nil(t, actual.Phone())
	assert.Equal(t, customer.RoleCustomer, actual.Role())
}

func TestNewCredentials(t *testing.T) {
	_, err := customer.NewCredentials("sam@example.com", "short")
	require.ErrorIs(t, err, customer.ErrPasswordTooWeak)

	_, err = customer.NewCredentials("sam@example.com", strings.Repeat("p", customer.MaxPasswordBytes+1))
	require.ErrorIs(t, err, customer.ErrPasswordTooLong)

	c, err := customer.NewCredentials("SAM@example.com", "tight-lines-42")
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", c.Email().Value())
}

func TestRole(t *testing.T) {
	assert.True(t, customer.RoleCaptain.IsValid())
	assert.False(t, customer.Role("owner").IsValid())
}
