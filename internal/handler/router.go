package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"charter-booking/internal/handler/api"
	"charter-booking/internal/handler/httperr"
	"charter-booking/internal/handler/middleware"
	"charter-booking/internal/pkg/clock"
	"charter-booking/internal/pkg/config"
	"charter-booking/internal/pkg/ratelimit"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Auth    *api.AuthHandler
	Trip    *api.TripHandler
	Booking *api.BookingHandler
	Review  *api.ReviewHandler
}

// ReviewRateLimit is the per-IP budget for review submissions.
type ReviewRateLimit gin.HandlerFunc

func NewReviewRateLimit(cfg config.Config, limiter ratelimit.Limiter, clk clock.Clock) ReviewRateLimit {
	policy := ratelimit.Policy{
		Limiter:     limiter,
		MaxAttempts: cfg.RateLimit.ReviewMax,
		Window:      cfg.RateLimit.ReviewWindow,
	}
	return ReviewRateLimit(middleware.RateLimit(policy, middleware.ByClientIP("review"), clk,
		"Too many review submissions. Please try again later."))
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware, reviewLimit ReviewRateLimit) {
	httperr.UseJSONFieldNames()
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, gin.HandlerFunc(reviewLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, reviewLimit gin.HandlerFunc) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		trips := apiGroup.Group("/trips")
		{
			addRoutes(trips, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Trip.Search},
				{Method: http.MethodGet, Path: "/featured", Handler: h.Trip.Featured},
				{Method: http.MethodGet, Path: "/filters", Handler: h.Trip.Filters},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Trip.Get},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListForTrip},
				// auth before the limiter so anonymous calls do not spend the budget
				{Method: http.MethodPost, Path: "/:id/reviews", Handler: h.Review.Create, Mw: []gin.HandlerFunc{requireAuth, reviewLimit}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/check-availability", Handler: h.Booking.CheckAvailability},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
			})
		}

		user := apiGroup.Group("/user")
		user.Use(requireAuth)
		{
			addRoutes(user, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.ListMine},
				{Method: http.MethodPatch, Path: "/bookings/:id", Handler: h.Booking.Modify},
				{Method: http.MethodDelete, Path: "/bookings/:id", Handler: h.Booking.Cancel},
				{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.ListMine},
				{Method: http.MethodPatch, Path: "/reviews/:id", Handler: h.Review.Update},
				{Method: http.MethodDelete, Path: "/reviews/:id", Handler: h.Review.Delete},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(requireAuth)
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "/:id/report", Handler: h.Review.Report},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
