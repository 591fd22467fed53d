package commands

import (
	"context"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/infra"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/pkg/jwt"
	"charter-booking/internal/pkg/password"
	"charter-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrEmailAlreadyTaken    = errs.New("email already registered")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type RegisterRequest struct {
	Email    string
	Name     string
	Phone    string
	Password string
}

type AuthResult struct {
	CustomerID  uuid.UUID
	Email       string
	Name        string
	Role        customer.Role
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

// Register creates an account. A customer that only ever booked as a guest
// is claimed by the registration instead of duplicated.
func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := customer.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	name, err := customer.NewName(req.Name)
	if err != nil {
		return nil, err
	}
	var phone *customer.Phone
	if req.Phone != "" {
		p, err := customer.NewPhone(req.Phone)
		if err != nil {
			return nil, err
		}
		phone = &p
	}
	pw, err := customer.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	c := customer.NewRegistered(email, name, phone, hash, a.clock.Now())

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var rerr error
		id, rerr = tx.Customers().Register(ctx, tx.DB(), c)
		return rerr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, err
	}

	return a.issue(id, email.Value(), name.Value(), c.Role())
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*AuthResult, error) {
	credentials, err := customer.NewCredentials(email, plainPassword)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().CustomerByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer and cost as a wrong password so emails cannot be enumerated.
			password.CompareDecoy(credentials.Password().Value())
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if snap.PasswordHash == nil {
		password.CompareDecoy(credentials.Password().Value())
		return nil, ErrInvalidCredentials
	}
	if err := password.ComparePassword(*snap.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := customer.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	return a.issue(snap.ID, snap.Email, snap.Name, role)
}

func (a *authCommandsImpl) issue(id uuid.UUID, email, name string, role customer.Role) (*AuthResult, error) {
	token, err := a.jwtService.GenerateToken(id, email, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{
		CustomerID:  id,
		Email:       email,
		Name:        name,
		Role:        role,
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.jwtService.TokenDuration()),
	}, nil
}
