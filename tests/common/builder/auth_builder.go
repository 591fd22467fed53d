//go:build unit || e2e

package builder

import (
	reqdto "charter-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "angler@example.com",
		Name:     "Sam Angler",
		Phone:    "+1 305 555 0100",
		Password: "password123",
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:    a.Email,
		Name:     a.Name,
		Phone:    a.Phone,
		Password: a.Password,
	}
}
