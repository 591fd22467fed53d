package request

import (
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	BookingID *string  `json:"bookingId,omitempty" binding:"omitempty,uuid"`
	Rating    int      `json:"rating" binding:"required,min=1,max=5"`
	Comment   string   `json:"comment,omitempty" binding:"max=1000"`
	Images    []string `json:"images,omitempty" binding:"max=5,dive,url"`
	TripDate  string   `json:"tripDate" binding:"required"`
}

func (r *CreateReviewRequest) ToCommand(tripID uuid.UUID) (commands.CreateReviewRequest, []httperr.FieldError) {
	out := commands.CreateReviewRequest{
		TripID:  tripID,
		Rating:  r.Rating,
		Comment: r.Comment,
		Images:  r.Images,
	}
	if r.BookingID != nil {
		id := uuid.MustParse(*r.BookingID)
		out.BookingID = &id
	}

	tripDate, ok := ParseDate(r.TripDate)
	if !ok {
		return out, []httperr.FieldError{invalidDate("tripDate")}
	}
	out.TripDate = tripDate
	return out, nil
}

// UpdateReviewRequest leaves range checks to the review so the caller gets
// the domain message for an out-of-range rating.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty" binding:"omitempty,max=1000"`
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{Rating: r.Rating, Comment: r.Comment}
}

type ReportReviewRequest struct {
	Reason string `json:"reason" binding:"required,min=1,max=500"`
}
