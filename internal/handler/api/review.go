package api

import (
	"net/http"

	reqdto "charter-booking/internal/handler/dto/request"
	resdto "charter-booking/internal/handler/dto/response"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review a trip. Content is moderated; held reviews need approval.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Trip ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.CreateReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/trips/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	tripID, ok := parseIDParam(c, "Invalid trip id")
	if !ok {
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	cmd, problems := req.ToCommand(tripID)
	if len(problems) > 0 {
		abortWithFieldErrors(c, problems)
		return
	}

	result, err := h.cmds.CreateReview(c.Request.Context(), cmd, userID)
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to create review")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReviewResult(result))
}

// @Summary List trip reviews
// @Description Approved reviews of a trip with pagination and rating stats
// @Tags reviews
// @Produce json
// @Param id path string true "Trip ID"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (1-50, default 10)"
// @Param sortBy query string false "newest, oldest, highest or lowest"
// @Param rating query int false "Only reviews with this rating"
// @Success 200 {object} resdto.TripReviewsResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/trips/{id}/reviews [get]
func (h *ReviewHandler) ListForTrip(c *gin.Context) {
	tripID, ok := parseIDParam(c, "Invalid trip id")
	if !ok {
		return
	}
	var query reqdto.TripReviewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	page, err := h.q.ListByTrip(c.Request.Context(), tripID, query.ToCriteria())
	if err != nil {
		abortWithUseCaseError(c, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTripReviewsPage(page))
}

// @Summary List my reviews
// @Description Reviews written by the current user, including ones awaiting approval
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.UserReviewListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/user/reviews [get]
func (h *ReviewHandler) ListMine(c *gin.Context) {
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

	items, next, err := h.q.ListByUser(c.Request.Context(), userID, query.Cursor(), query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	resp := resdto.UserReviewListResponse{Reviews: resdto.FromUserReviews(items)}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Update my review
// @Description Change rating or comment of an own review; the comment is moderated again
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Fields to change"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/reviews/{id} [patch]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid review id")
	if !ok {
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.cmds.UpdateReview(c.Request.Context(), id, req.ToCommand(), actorID); err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// @Summary Delete my review
// @Description Delete an own review (admins can delete any)
// @Tags user
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/user/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid review id")
	if !ok {
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	role, _ := middleware.GetUserRole(c)

	if err := h.cmds.DeleteReview(c.Request.Context(), id, actorID, role); err != nil {
		abortWithUseCaseError(c, err, "Internal server error")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Report review
// @Description Flag a review for moderators
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.ReportReviewRequest true "Report reason"
// @Success 202 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reviews/{id}/report [post]
func (h *ReviewHandler) Report(c *gin.Context) {
	id, ok := parseIDParam(c, "Invalid review id")
	if !ok {
		return
	}
	reporterID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.ReportReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	if err := h.cmds.ReportReview(c.Request.Context(), id, reporterID, req.Reason); err != nil {
		abortWithUseCaseError(c, err, "Failed to report review")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Review reported successfully"})
}
