package request

import (
	"strings"
	"time"

	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckAvailabilityRequest struct {
	TripID    string `json:"tripId" binding:"required,uuid"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate,omitempty"`
	Guests    int    `json:"guests" binding:"required,min=1,max=20"`
}

// ToCommand validates the date window against today. A non-empty slice of
// field errors means the request must be rejected.
func (r *CheckAvailabilityRequest) ToCommand(today time.Time) (commands.AvailabilityRequest, []httperr.FieldError) {
	start, end, problems := resolveStay(r.StartDate, r.EndDate, today)
	return commands.AvailabilityRequest{
		TripID:    uuid.MustParse(r.TripID),
		StartDate: start,
		EndDate:   end,
		Guests:    r.Guests,
	}, problems
}

type CustomerInfo struct {
	Name  string `json:"name" binding:"required,min=1,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=10,max=20"`
}

type CreateBookingRequest struct {
	TripID          string       `json:"tripId" binding:"required,uuid"`
	StartDate       string       `json:"startDate" binding:"required"`
	EndDate         string       `json:"endDate,omitempty"`
	Guests          int          `json:"guests" binding:"required,min=1,max=20"`
	SpecialRequests string       `json:"specialRequests,omitempty" binding:"max=1000"`
	CustomerInfo    CustomerInfo `json:"customerInfo" binding:"required"`
}

func (r *CreateBookingRequest) ToCommand(today time.Time) (commands.CreateBookingRequest, []httperr.FieldError) {
	start, end, problems := resolveStay(r.StartDate, r.EndDate, today)
	return commands.CreateBookingRequest{
		TripID:          uuid.MustParse(r.TripID),
		StartDate:       start,
		EndDate:         end,
		Guests:          r.Guests,
		SpecialRequests: strings.TrimSpace(r.SpecialRequests),
		Customer: commands.CustomerContact{
			Name:  strings.TrimSpace(r.CustomerInfo.Name),
			Email: strings.TrimSpace(r.CustomerInfo.Email),
			Phone: strings.TrimSpace(r.CustomerInfo.Phone),
		},
	}, problems
}

// ModifyBookingRequest changes only the fields that are present.
type ModifyBookingRequest struct {
	Guests    *int    `json:"guests,omitempty" binding:"omitempty,min=1,max=20"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// ToCommand only checks the date format; past and ordering rules belong to
// the booking itself.
func (r *ModifyBookingRequest) ToCommand() (commands.ModifyBookingRequest, []httperr.FieldError) {
	var (
		out      = commands.ModifyBookingRequest{Guests: r.Guests}
		problems []httperr.FieldError
	)
	if r.StartDate != nil {
		t, ok := ParseDate(*r.StartDate)
		if !ok {
			problems = append(problems, invalidDate("startDate"))
		} else {
			out.StartDate = &t
		}
	}
	if r.EndDate != nil {
		t, ok := ParseDate(*r.EndDate)
		if !ok {
			problems = append(problems, invalidDate("endDate"))
		} else {
			out.EndDate = &t
		}
	}
	return out, problems
}
