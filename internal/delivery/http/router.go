package http

import (
	"log/slog"
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/justinas/alice"
	httpSwagger "github.com/swaggo/http-swagger"

	"devevent/internal/delivery/http/controllers"
	"devevent/internal/delivery/http/middleware"
	"devevent/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Events   *controllers.EventController
	Bookings *controllers.BookingController
	Page     *controllers.PageController
	Health   *controllers.HealthController
}

// RouterOptions configures the middleware chain.
type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	// OrganizerVerifier guards POST /api/events when set.
	OrganizerVerifier domain.TokenVerifier
	// Sentry enables panic and error reporting; sentry.Init must have been called.
	Sentry bool
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, opts RouterOptions) http.Handler {
	mux := http.NewServeMux()

	createEvent := http.Handler(http.HandlerFunc(c.Events.CreateEvent))
	if opts.OrganizerVerifier != nil {
		createEvent = middleware.RequireOrganizer(opts.OrganizerVerifier, opts.Logger)(createEvent)
	}

	// API Routes
	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.Handle("POST /api/events", createEvent)
	mux.HandleFunc("GET /api/events/{slug}", c.Events.GetEventBySlug)

	// Bookings
	mux.HandleFunc("POST /api/events/{eventID}/bookings", c.Bookings.CreateBooking)
	mux.HandleFunc("GET /api/events/{eventID}/bookings", c.Bookings.ListEventBookings)
	mux.HandleFunc("PATCH /api/bookings/{bookingID}", c.Bookings.ChangeBookingEvent)

	// Page and health
	mux.HandleFunc("GET /{$}", c.Page.Index)
	mux.HandleFunc("GET /healthz", c.Health.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	chain := alice.New(middleware.Logging(opts.Logger), middleware.Recover(opts.Logger))
	if opts.Sentry {
		chain = chain.Append(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}
	chain = chain.Append(middleware.CORS(opts.AllowedOrigins))
	return chain.Then(mux)
}
