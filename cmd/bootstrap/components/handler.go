package components

import (
	"charter-booking/internal/handler"
	"charter-booking/internal/handler/api"
	"charter-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewTripHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
		handler.NewReviewRateLimit,
	),
	fx.Invoke(handler.NewRouter),
)
