//go:build e2e

package booking_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/domain/customer"
	"charter-booking/internal/handler/dto/request"
	"charter-booking/internal/handler/dto/response"
	"charter-booking/internal/usecase/shared"
	"charter-booking/tests/common/authtest"
	"charter-booking/tests/common/dbtest"
	"charter-booking/tests/common/httptest"
	"charter-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	availabilityURL = "/api/bookings/check-availability"
	bookingsURL     = "/api/bookings"
	bookingURL      = "/api/bookings/%s"
	myBookingsURL   = "/api/user/bookings"
	myBookingURL    = "/api/user/bookings/%s"

	anglerEmail = "angler@example.com"
)

type bookingSuite struct {
	e2e.SharedSuite

	tripID uuid.UUID
	token  string
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	s.tripID = dbtest.CreateTestTrip(t, s.DB, dbtest.DefaultTrip())
	s.token = authtest.CreateAndLogin(t, s.DB, s.Router, anglerEmail, customer.RoleCustomer.String())
}

func daysAhead(n int) string {
	return time.Now().UTC().AddDate(0, 0, n).Format(request.DateLayout)
}

func (s *bookingSuite) bookingBody(start string, guests int) request.CreateBookingRequest {
	return request.CreateBookingRequest{
		TripID:    s.tripID.String(),
		StartDate: start,
		Guests:    guests,
		CustomerInfo: request.CustomerInfo{
			Name:  "Sam Angler",
			Email: anglerEmail,
			Phone: "+1 305 555 0100",
		},
	}
}

func (s *bookingSuite) createBooking(body request.CreateBookingRequest) *response.CreateBookingResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, body, "")
	var res response.CreateBookingResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &res)
	return &res
}

func (s *bookingSuite) checkAvailability(start string, guests int) *response.AvailabilityResponse {
	t := s.T()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, request.CheckAvailabilityRequest{
		TripID:    s.tripID.String(),
		StartDate: start,
		Guests:    guests,
	}, "")
	var res response.AvailabilityResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
	return &res
}

func (s *bookingSuite) TestCheckAvailability() {
	s.Run("open date is available", func() {
		t := s.T()
		res := s.checkAvailability(daysAhead(30), 2)
		require.True(t, res.Available)
		require.Empty(t, res.Reason)
	})

	s.Run("too many guests", func() {
		t := s.T()
		res := s.checkAvailability(daysAhead(30), 8)
		require.False(t, res.Available)
		require.Equal(t, "Maximum 6 guests allowed", res.Reason)
	})

	s.Run("booked date is unavailable", func() {
		t := s.T()
		s.createBooking(s.bookingBody(daysAhead(30), 2))

		res := s.checkAvailability(daysAhead(30), 2)
		require.False(t, res.Available)
		require.Equal(t, "Trip is not available for the selected dates", res.Reason)

		require.True(t, s.checkAvailability(daysAhead(31), 2).Available)
	})

	s.Run("cancelled bookings free their dates", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, anglerEmail, customer.RoleCustomer.String())
		start, err := time.Parse(request.DateLayout, daysAhead(30))
		require.NoError(t, err)
		dbtest.CreateTestBooking(t, s.DB, s.tripID, customerID, start, 2, "CANCELLED")

		require.True(t, s.checkAvailability(daysAhead(30), 2).Available)
	})

	s.Run("unknown trip is reported, not failed", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, request.CheckAvailabilityRequest{
			TripID:    uuid.NewString(),
			StartDate: daysAhead(30),
			Guests:    2,
		}, "")
		var res response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.False(t, res.Available)
		require.Equal(t, "Trip not found", res.Reason)
	})

	s.Run("past start date is rejected", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, availabilityURL, request.CheckAvailabilityRequest{
			TripID:    s.tripID.String(),
			StartDate: daysAhead(-2),
			Guests:    2,
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("booking is pending and priced per guest", func() {
		t := s.T()
		res := s.createBooking(s.bookingBody(daysAhead(30), 2))

		require.True(t, res.Success)
		require.Equal(t, "PENDING", res.Booking.Status)
		require.InDelta(t, 900.0, res.Booking.TotalPrice, 0.001)
		require.Equal(t, "Sunrise Tarpon Run", res.Booking.Trip.Title)
		require.Equal(t, "Key West, FL", res.Booking.Trip.LocationName)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, res.BookingID), nil, "")
		var got struct {
			Success bool                     `json:"success"`
			Booking response.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, res.BookingID, got.Booking.ID)
		require.Equal(t, anglerEmail, got.Booking.Customer.Email)
		require.Equal(t, 2, got.Booking.Guests)
	})

	s.Run("created booking queues an event", func() {
		t := s.T()
		s.createBooking(s.bookingBody(daysAhead(30), 2))

		var jobs int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM notification_jobs WHERE topic = $1", shared.TopicBookingCreated).Scan(&jobs))
		require.Equal(t, 1, jobs)
	})

	s.Run("guest contact becomes a passwordless customer", func() {
		t := s.T()
		body := s.bookingBody(daysAhead(30), 1)
		body.CustomerInfo.Email = "walkin@example.com"
		s.createBooking(body)

		var hasPassword bool
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT password_hash IS NOT NULL FROM customers WHERE email = $1", "walkin@example.com").Scan(&hasPassword))
		require.False(t, hasPassword)
	})

	s.Run("double booking is refused", func() {
		t := s.T()
		s.createBooking(s.bookingBody(daysAhead(30), 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody(daysAhead(30), 1), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Trip is not available for the selected dates")
	})

	s.Run("capacity is enforced", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody(daysAhead(30), 8), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Maximum 6 guests allowed for this trip")
	})

	s.Run("multi-day range blocks overlapping days", func() {
		t := s.T()
		body := s.bookingBody(daysAhead(40), 2)
		body.EndDate = daysAhead(42)
		s.createBooking(body)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, s.bookingBody(daysAhead(41), 2), "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Trip is not available for the selected dates")
		require.True(t, s.checkAvailability(daysAhead(43), 2).Available)
	})

	s.Run("retry with the same idempotency key returns the first booking", func() {
		t := s.T()
		headers := map[string]string{"Idempotency-Key": uuid.NewString()}
		body := s.bookingBody(daysAhead(50), 2)

		first := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, "", headers)
		var created response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, first, http.StatusCreated, &created)

		retry := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, body, "", headers)
		var replayed response.CreateBookingResponse
		httptest.AssertSuccessResponse(t, retry, http.StatusOK, &replayed)
		require.Equal(t, created.BookingID, replayed.BookingID)
		require.Equal(t, "true", retry.Header().Get("Idempotent-Replayed"))

		var count int
		require.NoError(t, s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE trip_id = $1", s.tripID).Scan(&count))
		require.Equal(t, 1, count)

		other := s.bookingBody(daysAhead(51), 2)
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, bookingsURL, other, "", headers)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Idempotency-Key")
	})

	s.Run("unknown booking is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(bookingURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestListMyBookings() {
	s.Run("lists own bookings with keyset cursor", func() {
		t := s.T()
		first := s.createBooking(s.bookingBody(daysAhead(30), 2))
		second := s.createBooking(s.bookingBody(daysAhead(35), 2))

		other := s.bookingBody(daysAhead(50), 2)
		other.CustomerInfo.Email = "someone@example.com"
		s.createBooking(other)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myBookingsURL+"?limit=1", nil, s.token)
		var page response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Len(t, page.Bookings, 1)
		require.Equal(t, second.BookingID, page.Bookings[0].ID)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, myBookingsURL+"?limit=1&after="+page.NextCursor, nil, s.token)
		var next response.BookingListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &next)
		require.Len(t, next.Bookings, 1)
		require.Equal(t, first.BookingID, next.Bookings[0].ID)
		require.Equal(t, "Sunrise Tarpon Run", next.Bookings[0].TripTitle)
	})

	s.Run("requires authentication", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, myBookingsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *bookingSuite) TestModifyBooking() {
	s.Run("guest change reprices the booking", func() {
		t := s.T()
		created := s.createBooking(s.bookingBody(daysAhead(30), 2))

		guests := 4
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(myBookingURL, created.BookingID),
			request.ModifyBookingRequest{Guests: &guests}, s.token)
		var res struct {
			Booking response.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 4, res.Booking.Guests)
		require.InDelta(t, 1800.0, res.Booking.TotalPrice, 0.001)
	})

	s.Run("moving onto a booked date is refused", func() {
		t := s.T()
		created := s.createBooking(s.bookingBody(daysAhead(30), 2))
		s.createBooking(s.bookingBody(daysAhead(33), 2))

		start := daysAhead(33)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(myBookingURL, created.BookingID),
			request.ModifyBookingRequest{StartDate: &start}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Trip is not available for the selected dates")
	})

	s.Run("moving within its own dates is allowed", func() {
		t := s.T()
		body := s.bookingBody(daysAhead(30), 2)
		body.EndDate = daysAhead(32)
		created := s.createBooking(body)

		start, end := daysAhead(31), daysAhead(32)
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(myBookingURL, created.BookingID),
			request.ModifyBookingRequest{StartDate: &start, EndDate: &end}, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)
	})

	s.Run("cancelled booking cannot be modified", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, anglerEmail, customer.RoleCustomer.String())
		start, err := time.Parse(request.DateLayout, daysAhead(30))
		require.NoError(t, err)
		id := dbtest.CreateTestBooking(t, s.DB, s.tripID, customerID, start, 2, "CANCELLED")

		guests := 3
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(myBookingURL, id),
			request.ModifyBookingRequest{Guests: &guests}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Cannot modify this booking")
	})

	s.Run("another customer's booking is not found", func() {
		t := s.T()
		other := s.bookingBody(daysAhead(30), 2)
		other.CustomerInfo.Email = "someone@example.com"
		created := s.createBooking(other)

		guests := 3
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(myBookingURL, created.BookingID),
			request.ModifyBookingRequest{Guests: &guests}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestCancelBooking() {
	s.Run("cancel frees the date", func() {
		t := s.T()
		created := s.createBooking(s.bookingBody(daysAhead(30), 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(myBookingURL, created.BookingID), nil, s.token)
		var res response.BookingCancelledResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, "Booking cancelled successfully", res.Message)
		require.Equal(t, "CANCELLED", res.Booking.Status)

		require.True(t, s.checkAvailability(daysAhead(30), 2).Available)
	})

	s.Run("cancelling inside 24 hours is refused", func() {
		t := s.T()
		customerID := dbtest.CreateTestCustomer(t, s.DB, anglerEmail, customer.RoleCustomer.String())
		start, err := time.Parse(request.DateLayout, daysAhead(1))
		require.NoError(t, err)
		id := dbtest.CreateTestBooking(t, s.DB, s.tripID, customerID, start, 2, "CONFIRMED")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(myBookingURL, id), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Cannot cancel bookings less than 24 hours before start time")
	})

	s.Run("cancelling twice is refused", func() {
		t := s.T()
		created := s.createBooking(s.bookingBody(daysAhead(30), 2))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(myBookingURL, created.BookingID), nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(myBookingURL, created.BookingID), nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Cannot cancel this booking")
	})
}
