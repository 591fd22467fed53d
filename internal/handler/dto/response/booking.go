package response

import (
	"time"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

func FromAvailability(a booking.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{Available: a.Available, Reason: a.Reason}
}

type CreatedBookingTrip struct {
	Title        string `json:"title"`
	LocationName string `json:"locationName"`
}

type CreatedBooking struct {
	ID         uuid.UUID          `json:"id"`
	Status     string             `json:"status"`
	TotalPrice float64            `json:"totalPrice"`
	Trip       CreatedBookingTrip `json:"trip"`
}

type CreateBookingResponse struct {
	Success   bool           `json:"success"`
	BookingID uuid.UUID      `json:"bookingId"`
	Booking   CreatedBooking `json:"booking"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		BookingID: r.BookingID,
		Booking: CreatedBooking{
			ID:         r.BookingID,
			Status:     r.Status.String(),
			TotalPrice: centsToDollars(r.TotalPriceCents),
			Trip: CreatedBookingTrip{
				Title:        r.TripTitle,
				LocationName: r.TripLocation,
			},
		},
	}
}

type BookingTripResponse struct {
	Title         string   `json:"title"`
	LocationName  string   `json:"locationName"`
	Images        []string `json:"images"`
	DurationHours int      `json:"duration"`
}

type BookingCustomerResponse struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID              uuid.UUID               `json:"id"`
	TripID          uuid.UUID               `json:"tripId"`
	CustomerID      uuid.UUID               `json:"customerId"`
	StartDate       time.Time               `json:"startDate"`
	EndDate         *time.Time              `json:"endDate,omitempty"`
	Guests          int                     `json:"guests"`
	TotalPrice      float64                 `json:"totalPrice"`
	Status          string                  `json:"status"`
	SpecialRequests string                  `json:"specialRequests,omitempty"`
	Trip            BookingTripResponse     `json:"trip"`
	Customer        BookingCustomerResponse `json:"customer"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func (r *BookingResponse) TotalPriceCents(cents int64) {
	r.TotalPrice = centsToDollars(cents)
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	var res BookingResponse
	mustCopy(&res, v)
	return &res
}

type BookingListItemResponse struct {
	ID               uuid.UUID  `json:"id"`
	TripID           uuid.UUID  `json:"tripId"`
	TripTitle        string     `json:"tripTitle"`
	TripLocationName string     `json:"tripLocationName"`
	TripImages       []string   `json:"tripImages"`
	StartDate        time.Time  `json:"startDate"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Guests           int        `json:"guests"`
	TotalPrice       float64    `json:"totalPrice"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func (r *BookingListItemResponse) TotalPriceCents(cents int64) {
	r.TotalPrice = centsToDollars(cents)
}

func FromBookingList(items []*queries.BookingListItem) []*BookingListItemResponse {
	res := make([]*BookingListItemResponse, len(items))
	for i, it := range items {
		var item BookingListItemResponse
		mustCopy(&item, it)
		res[i] = &item
	}
	return res
}

type BookingListResponse struct {
	Bookings   []*BookingListItemResponse `json:"bookings"`
	NextCursor string                     `json:"next_cursor,omitempty"`
}

type BookingCancelledResponse struct {
	Message string           `json:"message"`
	Booking *BookingResponse `json:"booking"`
}
