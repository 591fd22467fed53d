package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerIdempotencyKey = "Idempotency-Key"
	headerReplayed       = "Idempotent-Replayed"
)

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	clock clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Check availability
// @Description Check whether a trip can be booked for the given dates and party size
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CheckAvailabilityRequest true "Availability request"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/check-availability [post]
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	cmd, problems := req.ToCommand(clock.Today(h.clock))
	if len(problems) > 0 {
		abortWithFieldErrors(c, problems)
		return
	}

	availability, err := h.cmds.CheckAvailability(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to check availability")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(availability))
}

// @Summary Create booking
// @Description Book a trip; the customer is matched by email or created
// @Tags bookings
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "UUID; a retry with the same key and body returns the first booking"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Success 200 {object} resdto.CreateBookingResponse "Replayed result"
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	cmd, problems := req.ToCommand(clock.Today(h.clock))
	if len(problems) > 0 {
		abortWithFieldErrors(c, problems)
		return
	}

	if raw := c.GetHeader(headerIdempotencyKey); raw != "" {
		key, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		cmd.IdempotencyKey = &key
	}

	result, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create booking")
		return
	}
	c.Header("Location", "/api/bookings/"+result.BookingID.String())
	if result.Replayed {
		c.Header(headerReplayed, "true")
		c.JSON(http.StatusOK, resdto.FromCreateBookingResult(result))
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateBookingResult(result))
}

// @Summary Get booking
// @Description Booking detail with trip and customer summary
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid booking id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": resdto.FromBookingView(view)})
}

// @Summary List my bookings
// @Description Bookings of the current user, newest first, with keyset pagination
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/user/bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var query reqdto.KeysetQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	items, next, err := h.q.ListByCustomer(c.Request.Context(), userID, query.Cursor(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	resp := resdto.BookingListResponse{Bookings: resdto.FromBookingList(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Modify my booking
// @Description Change guests or dates of a pending or confirmed future booking
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ModifyBookingRequest true "Fields to change"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/bookings/{id} [patch]
func (h *BookingHandler) Modify(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid booking id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.ModifyBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	cmd, problems := req.ToCommand()
	if len(problems) > 0 {
		abortWithFieldErrors(c, problems)
		return
	}

	if err := h.cmds.Modify(c.Request.Context(), id, userID, cmd); err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": resdto.FromBookingView(view)})
}

// @Summary Cancel my booking
// @Description Cancel a pending or confirmed booking more than 24 hours before start
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingCancelledResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid booking id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, userID); err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.BookingCancelledResponse{
		Message: "Booking cancelled successfully",
		Booking: resdto.FromBookingView(view),
	})
}
