package response

import (
	"time"

	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func FromCustomerView(v *queries.CustomerView) *UserResponse {
	var res UserResponse
	mustCopy(&res, v)
	return &res
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	User        *UserResponse `json:"user"`
}

func FromAuthResult(r *commands.AuthResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresAt:   r.ExpiresAt,
		User: &UserResponse{
			ID:    r.CustomerID,
			Email: r.Email,
			Name:  r.Name,
			Role:  r.Role.String(),
		},
	}
}
