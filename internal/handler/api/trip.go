package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TripHandler struct {
	q     queries.TripQueries
	clock clock.Clock
}

func NewTripHandler(q queries.TripQueries, clk clock.Clock) *TripHandler {
	return &TripHandler{q: q, clock: clk}
}

// @Summary Search trips
// @Description Search trips by location, dates, party size and filters
// @Tags trips
// @Produce json
// @Param location query string false "Location substring"
// @Param guests query int false "Party size (1-20)"
// @Param startDate query string false "Start date (YYYY-MM-DD)"
// @Param endDate query string false "End date (YYYY-MM-DD)"
// @Param priceMin query number false "Minimum base price"
// @Param priceMax query number false "Maximum base price"
// @Param boatType query []string false "Boat types" collectionFormat(multi)
// @Param fishingType query []string false "Fishing types" collectionFormat(multi)
// @Param duration query []int false "Durations in hours" collectionFormat(multi)
// @Param sortBy query string false "price, rating, duration, popularity or createdAt"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12, max 50)"
// @Success 200 {object} resdto.TripSearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/trips/search [get]
func (h *TripHandler) Search(c *gin.Context) {
	var query reqdto.SearchTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	criteria, problems := query.ToCriteria(clock.Today(h.clock))
	if len(problems) > 0 {
		abortWithFieldErrors(c, problems)
		return
	}

	result, err := h.q.Search(c.Request.Context(), criteria)
	if err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resdto.FromTripSearch(result)})
}

// @Summary Featured trips
// @Description Most booked and reviewed trips
// @Tags trips
// @Produce json
// @Param limit query int false "Max items (default 8)"
// @Success 200 {array} resdto.TripResponse
// @Failure 500 {object} httperr.Response
// @Router /api/trips/featured [get]
func (h *TripHandler) Featured(c *gin.Context) {
	var query reqdto.FeaturedTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}
	trips, err := h.q.Featured(c.Request.Context(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch featured trips")
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": resdto.FromTripViews(trips)})
}

// @Summary Trip filter options
// @Description Distinct boat types, fishing types, durations and the price range
// @Tags trips
// @Produce json
// @Success 200 {object} resdto.TripFiltersResponse
// @Failure 500 {object} httperr.Response
// @Router /api/trips/filters [get]
func (h *TripHandler) Filters(c *gin.Context) {
	opts, err := h.q.FilterOptions(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch filter options")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTripFilterOptions(opts))
}

// @Summary Get trip
// @Description Trip detail with rating, review count and booking count
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} resdto.TripResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/trips/{id} [get]
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid trip id")
	if !ok {
		return
	}
	trip, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch trip")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTripView(trip))
}

func parseIDParam(c *gin.Context, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
