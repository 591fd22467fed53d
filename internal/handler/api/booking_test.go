//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/customer"
	"charter-booking/internal/handler/api"
	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"
	"charter-booking/tests/common/httptest"
	"charter-booking/tests/common/testutil"
	commandsmock "charter-booking/tests/mock/commands"
	queriesmock "charter-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries, clock.NewMockClock(handlerNow))

	s.router.POST("/bookings/check-availability", h.CheckAvailability)
	s.router.POST("/bookings", h.Create)
	s.router.GET("/bookings/:id", h.Get)

	user := s.router.Group("/user", fakeAuth(s.userID, customer.RoleCustomer))
	user.GET("/bookings", h.ListMine)
	user.PATCH("/bookings/:id", h.Modify)
	user.DELETE("/bookings/:id", h.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateBooking(tripID uuid.UUID) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TripID:    tripID.String(),
		StartDate: "2026-06-10",
		Guests:    2,
		CustomerInfo: reqdto.CustomerInfo{
			Name:  "Sam Angler",
			Email: "sam@example.com",
			Phone: "+1 305 555 0100",
		},
	}
}

func sampleBookingView(id uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:              id,
		TripID:          uuid.New(),
		CustomerID:      uuid.New(),
		StartDate:       time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Guests:          2,
		TotalPriceCents: 90000,
		Status:          booking.StatusPending.String(),
		Trip:            queries.BookingTripSummary{Title: "Sunrise Tarpon Run", LocationName: "Key West, FL", DurationHours: 4},
		Customer:        queries.BookingCustomerSummary{Name: "Sam Angler", Email: "sam@example.com"},
	}
}

func (s *BookingHandlerTestSuite) TestCheckAvailability() {
	url := "/bookings/check-availability"
	tripID := uuid.New()
	reqBody := reqdto.CheckAvailabilityRequest{TripID: tripID.String(), StartDate: "2026-06-10", Guests: 4}

	s.Run("success: returns availability", func() {
		s.mockCommands.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.AvailabilityRequest) (booking.Availability, error) {
				s.Equal(tripID, req.TripID)
				s.Equal(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), req.StartDate)
				s.Nil(req.EndDate)
				s.Equal(4, req.Guests)
				return booking.Availability{Available: true}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Available)
		s.Empty(res.Reason)
	})

	s.Run("success: unavailable carries the reason", func() {
		s.mockCommands.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(booking.Availability{Reason: booking.CapacityReason(6)}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.False(res.Available)
		s.Equal("Maximum 6 guests allowed", res.Reason)
	})

	s.Run("error: 400 on invalid input", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"start date in the past", testutil.Field("startDate", "2026-05-31")},
			{"end before start", testutil.Field("endDate", "2026-06-09")},
			{"unparseable date", testutil.Field("startDate", "10/06/2026")},
			{"zero guests", testutil.Field("guests", 0)},
			{"too many guests", testutil.Field("guests", 21)},
			{"trip id not a uuid", testutil.Field("tripId", "abc")},
			{"missing trip id", testutil.Field("tripId", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
			})
		}
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockCommands.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).
			Return(booking.Availability{}, errors.New("connection reset"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to check availability")
	})
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	tripID := uuid.New()
	reqBody := validCreateBooking(tripID)

	s.Run("success: 201 with location header", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Equal(tripID, req.TripID)
				s.Equal("sam@example.com", req.Customer.Email)
				return &commands.CreateBookingResult{
					BookingID:       bookingID,
					Status:          booking.StatusPending,
					TotalPriceCents: 90000,
					TripTitle:       "Sunrise Tarpon Run",
					TripLocation:    "Key West, FL",
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var res resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.True(res.Success)
		s.Equal(bookingID, res.BookingID)
		s.Equal("PENDING", res.Booking.Status)
		s.InDelta(900.0, res.Booking.TotalPrice, 0.001)
		s.Equal("Key West, FL", res.Booking.Trip.LocationName)
		s.Equal("/api/bookings/"+bookingID.String(), rec.Header().Get("Location"))
	})

	s.Run("error: 400 with the rejection reason", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, &booking.RejectedError{Reason: booking.ReasonUnavailable})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, booking.ReasonUnavailable)
	})

	s.Run("error: 400 on invalid customer info", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"bad email", func(m map[string]any) { m["customerInfo"].(map[string]any)["email"] = "nope" }},
			{"short phone", func(m map[string]any) { m["customerInfo"].(map[string]any)["phone"] = "12345" }},
			{"missing name", func(m map[string]any) { delete(m["customerInfo"].(map[string]any), "name") }},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
			})
		}
	})

	s.Run("success: 200 when the idempotency key replays", func() {
		key := uuid.New()
		bookingID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
				s.Require().NotNil(req.IdempotencyKey)
				s.Equal(key, *req.IdempotencyKey)
				return &commands.CreateBookingResult{
					BookingID: bookingID,
					Status:    booking.StatusPending,
					Replayed:  true,
				}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": key.String()})

		var res resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(bookingID, res.BookingID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("error: 400 on a malformed idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
			map[string]string{"Idempotency-Key": "retry-1"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key must be a UUID")
	})

	s.Run("error: idempotency failures", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"key reused for another body", commands.ErrIdempotencyKeyReuse, http.StatusUnprocessableEntity},
			{"key claimed concurrently", commands.ErrIdempotencyConflict, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "",
					map[string]string{"Idempotency-Key": uuid.NewString()})
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "Idempotency-Key")
			})
		}
	})

	s.Run("error: 500 hides internal failures", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrBookingCreateFailed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create booking")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: returns booking detail", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(sampleBookingView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")

		var res struct {
			Success bool                   `json:"success"`
			Booking resdto.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Equal(id, res.Booking.ID)
		s.InDelta(900.0, res.Booking.TotalPrice, 0.001)
		s.Equal("Sunrise Tarpon Run", res.Booking.Trip.Title)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})
}

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: passes cursor and returns next cursor", func() {
		items := []*queries.BookingListItem{{ID: uuid.New(), TripTitle: "Reef Drift", TotalPriceCents: 12550, Status: "CONFIRMED"}}
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 10).
			Return(items, &queries.Cursor{After: "next"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/bookings?limit=10&after=abc", nil, "")

		var res resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Bookings, 1)
		s.InDelta(125.5, res.Bookings[0].TotalPrice, 0.001)
		s.Equal("next", res.NextCursor)
	})

	s.Run("error: 400 on invalid cursor", func() {
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), s.userID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/bookings?after=garbage", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 400 when limit exceeds maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/user/bookings?limit=201", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *BookingHandlerTestSuite) TestModify() {
	id := uuid.New()
	url := "/user/bookings/" + id.String()

	s.Run("success: returns the updated booking", func() {
		guests := 3
		s.mockCommands.EXPECT().Modify(gomock.Any(), id, s.userID, commands.ModifyBookingRequest{Guests: &guests}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(sampleBookingView(id), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"guests": 3}, "")

		var res struct {
			Booking resdto.BookingResponse `json:"booking"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(id, res.Booking.ID)
	})

	s.Run("error: 400 when the booking cannot change", func() {
		s.mockCommands.EXPECT().Modify(gomock.Any(), id, s.userID, gomock.Any()).Return(booking.ErrCannotModify)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"guests": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cannot modify this booking")
	})

	s.Run("error: 404 for another customer's booking", func() {
		s.mockCommands.EXPECT().Modify(gomock.Any(), id, s.userID, gomock.Any()).Return(commands.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"guests": 2}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"startDate": "soon"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/user/bookings/" + id.String()

	s.Run("success: returns the cancelled booking", func() {
		view := sampleBookingView(id)
		view.Status = booking.StatusCancelled.String()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var res resdto.BookingCancelledResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("Booking cancelled successfully", res.Message)
		s.Equal("CANCELLED", res.Booking.Status)
	})

	s.Run("error: 400 inside the cancellation window", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID).Return(booking.ErrCancellationWindow)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "less than 24 hours")
	})
}
