//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"charter-booking/internal/handler/api"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/queries"
	"charter-booking/tests/common/httptest"
	queriesmock "charter-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TripHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTripQueries
}

func (s *TripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTripQueries(s.mockCtrl)
	h := api.NewTripHandler(s.mockQueries, clock.NewMockClock(handlerNow))

	s.router.GET("/trips/search", h.Search)
	s.router.GET("/trips/featured", h.Featured)
	s.router.GET("/trips/filters", h.Filters)
	s.router.GET("/trips/:id", h.Get)
}

func (s *TripHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTripHandlerSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}

func sampleTripView() *queries.TripView {
	return &queries.TripView{
		ID:             uuid.New(),
		Title:          "Sunrise Tarpon Run",
		LocationName:   "Key West, FL",
		DurationHours:  4,
		BasePriceCents: 45050,
		BoatType:       "center-console",
		FishingTypes:   []string{"inshore"},
		MaxGuests:      6,
		Rating:         4.5,
		ReviewCount:    12,
		BookingCount:   30,
	}
}

func (s *TripHandlerTestSuite) TestSearch() {
	s.Run("success: maps filters and converts prices", func() {
		view := sampleTripView()
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c queries.TripSearchCriteria) (*queries.TripSearchResult, error) {
				s.Equal("key west", c.Location)
				s.Equal(4, c.Guests)
				s.Require().NotNil(c.MinPrice)
				s.Equal(int64(10000), *c.MinPrice)
				s.Require().NotNil(c.MaxPrice)
				s.Equal(int64(50050), *c.MaxPrice)
				s.Equal([]string{"center-console", "skiff"}, c.BoatTypes)
				s.Equal([]int{4, 8}, c.Durations)
				s.Equal(time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), *c.StartDate)
				s.Equal("price", c.SortBy)
				return &queries.TripSearchResult{
					Trips:      []*queries.TripView{view},
					Pagination: queries.NewPagination(1, 12, 1),
				}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/trips/search?location=key+west&guests=4&priceMin=100&priceMax=500.50"+
				"&boatType=center-console&boatType=skiff&duration=4&duration=8"+
				"&startDate=2026-06-10&sortBy=price", nil, "")

		var res struct {
			Success bool                      `json:"success"`
			Data    resdto.TripSearchResponse `json:"data"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Success)
		s.Require().Len(res.Data.Trips, 1)
		s.InDelta(450.5, res.Data.Trips[0].BasePrice, 0.001)
		s.Equal(4, res.Data.Trips[0].DurationHours)
		s.Equal(1, res.Data.Pagination.TotalCount)
		s.False(res.Data.Pagination.HasNextPage)
	})

	s.Run("error: 400 on invalid filters", func() {
		cases := []struct {
			name  string
			query string
		}{
			{"price range inverted", "priceMin=500&priceMax=100"},
			{"start date in the past", "startDate=2026-05-01"},
			{"end before start", "startDate=2026-06-10&endDate=2026-06-09"},
			{"unknown sort", "sortBy=distance"},
			{"limit over 50", "limit=51"},
			{"guests over 20", "guests=21"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/search?"+tc.query, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
			})
		}
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/search", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *TripHandlerTestSuite) TestFeatured() {
	s.Run("success: returns featured trips", func() {
		s.mockQueries.EXPECT().Featured(gomock.Any(), 4).Return([]*queries.TripView{sampleTripView()}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/featured?limit=4", nil, "")

		var res struct {
			Trips []resdto.TripResponse `json:"trips"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res.Trips, 1)
		s.Equal(30, res.Trips[0].BookingCount)
	})

	s.Run("error: 500 with endpoint message", func() {
		s.mockQueries.EXPECT().Featured(gomock.Any(), 0).Return(nil, errors.New("boom"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/featured", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch featured trips")
	})
}

func (s *TripHandlerTestSuite) TestFilters() {
	s.mockQueries.EXPECT().FilterOptions(gomock.Any()).Return(&queries.TripFilterOptions{
		BoatTypes:     []string{"center-console", "skiff"},
		FishingTypes:  []string{"fly", "inshore"},
		MinPriceCents: 25000,
		MaxPriceCents: 120000,
		Durations:     []int{4, 8},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/filters", nil, "")

	var res resdto.TripFiltersResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
	s.Equal([2]float64{250, 1200}, res.PriceRange)
	s.Equal([]int{4, 8}, res.Durations)
}

func (s *TripHandlerTestSuite) TestGet() {
	s.Run("success: returns trip detail", func() {
		view := sampleTripView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/"+view.ID.String(), nil, "")

		var res resdto.TripResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ID, res.ID)
		s.InDelta(4.5, res.Rating, 0.001)
	})

	s.Run("error: 404 for unknown trip", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrTripNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Trip not found")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/trips/xyz", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid trip id")
	})
}
