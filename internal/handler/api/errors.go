package api

import (
	"log/slog"
	"net/http"

	"charter-booking/internal/domain/booking"
	"charter-booking/internal/domain/customer"
	domreview "charter-booking/internal/domain/review"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/errs"
	"charter-booking/internal/usecase/commands"
	"charter-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errs.New("request is not authenticated")
	errInvalidInput    = errs.New("invalid request input")
)

type mappedError struct {
	target  error
	status  int
	message string
}

// Ordered: the first matching target wins. An empty message means the
// sentinel's own text is shown to the caller.
var errorTable = []mappedError{
	{commands.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, "Booking not found"},
	{commands.ErrReviewNotFound, http.StatusNotFound, "Review not found"},
	{commands.ErrTripNotFound, http.StatusNotFound, "Trip not found"},
	{queries.ErrTripNotFound, http.StatusNotFound, "Trip not found"},
	{queries.ErrCustomerNotFound, http.StatusNotFound, "User not found"},

	{commands.ErrReviewNotOwned, http.StatusForbidden, "You can only change your own reviews"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrEmailAlreadyTaken, http.StatusConflict, "Email is already registered"},
	{commands.ErrIdempotencyKeyReuse, http.StatusUnprocessableEntity, "Idempotency-Key was already used for a different request"},
	{commands.ErrIdempotencyConflict, http.StatusConflict, "A request with this Idempotency-Key is already in progress"},
	{queries.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},

	{booking.ErrInvalidDateRange, http.StatusBadRequest, ""},
	{booking.ErrInvalidGuests, http.StatusBadRequest, ""},
	{booking.ErrCannotModify, http.StatusBadRequest, ""},
	{booking.ErrPastBooking, http.StatusBadRequest, ""},
	{booking.ErrStartInPast, http.StatusBadRequest, ""},
	{booking.ErrCannotCancel, http.StatusBadRequest, ""},
	{booking.ErrCancellationWindow, http.StatusBadRequest, ""},

	{domreview.ErrInvalidRating, http.StatusBadRequest, ""},
	{domreview.ErrCommentTooLong, http.StatusBadRequest, ""},
	{domreview.ErrTooManyImages, http.StatusBadRequest, ""},
	{domreview.ErrInvalidImageURL, http.StatusBadRequest, ""},
	{domreview.ErrTripDateInFuture, http.StatusBadRequest, ""},

	{customer.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
	{customer.ErrInvalidName, http.StatusBadRequest, "Name must be between 1 and 100 characters"},
	{customer.ErrInvalidPhone, http.StatusBadRequest, "Phone number must be between 10 and 20 characters"},
	{customer.ErrPasswordTooWeak, http.StatusBadRequest, "Password must be at least 8 characters long"},
	{customer.ErrPasswordTooLong, http.StatusBadRequest, "Password must be at most 72 bytes long"},
}

// abortWithUseCaseError renders a use-case failure. Anything unknown is an
// infrastructure failure: it is logged and answered with fallback only.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	var rejected *booking.RejectedError
	if errs.As(err, &rejected) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, rejected.Reason, nil)
		return
	}

	var moderated *commands.ModerationRejectedError
	if errs.As(err, &moderated) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, moderated.Error(), gin.H{"reasons": moderated.Reasons})
		return
	}

	for _, m := range errorTable {
		if errs.Is(err, m.target) {
			msg := m.message
			if msg == "" {
				msg = m.target.Error()
			}
			httperr.AbortWithError(c, m.status, err, msg, nil)
			return
		}
	}

	slog.Error(fallback,
		"error", err,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
		"stack", errs.ExtractStackLines(err, 5),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", httperr.ValidationDetail(err))
}

func abortWithFieldErrors(c *gin.Context, problems []httperr.FieldError) {
	httperr.AbortWithError(c, http.StatusBadRequest, errInvalidInput, "Invalid request data", problems)
}

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
