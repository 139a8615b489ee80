package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/ulule/limiter/v3"

	"eventapi/internal/delivery/http/controllers"
	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Event   *controllers.EventController
	RSVP    *controllers.RSVPController
	Review  *controllers.ReviewController
}

// NewRouter initializes the HTTP router with all application routes.
// Every resource path is served with and without a trailing slash.
func NewRouter(c Controllers, verifier domain.TokenVerifier, db Pinger, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Auth
	handle(mux, "POST /auth/register", http.HandlerFunc(c.Auth.Register))
	handle(mux, "POST /auth/token", http.HandlerFunc(c.Auth.Token))
	handle(mux, "POST /auth/token/refresh", http.HandlerFunc(c.Auth.Refresh))

	// Profile
	handle(mux, "GET /profile/me", auth(c.Profile.GetMe))
	handle(mux, "PATCH /profile/me", auth(c.Profile.UpdateMe))

	// Events
	handle(mux, "GET /events", http.HandlerFunc(c.Event.ListEvents))
	handle(mux, "POST /events", auth(c.Event.CreateEvent))
	handle(mux, "GET /events/{eventID}", http.HandlerFunc(c.Event.GetEvent))
	handle(mux, "PUT /events/{eventID}", auth(c.Event.UpdateEvent))
	handle(mux, "PATCH /events/{eventID}", auth(c.Event.UpdateEvent))
	handle(mux, "DELETE /events/{eventID}", auth(c.Event.DeleteEvent))

	// RSVPs
	handle(mux, "POST /events/{eventID}/rsvp", auth(c.RSVP.SetOwnRSVP))
	handle(mux, "PATCH /events/{eventID}/rsvp/{userID}", auth(c.RSVP.UpdateRSVP))

	// Reviews; anonymous creation reaches the service so a missing event reports 404 first
	handle(mux, "GET /events/{eventID}/reviews", http.HandlerFunc(c.Review.ListReviews))
	handle(mux, "POST /events/{eventID}/reviews", http.HandlerFunc(c.Review.CreateReview))

	mux.HandleFunc("GET /healthz", healthz(db, logger))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// HandlerOptions configures the middleware chain built by NewHandler.
type HandlerOptions struct {
	AllowedOrigins []string
	RateLimit      string
	LimiterStore   limiter.Store
	Verifier       domain.TokenVerifier
	Logger         *slog.Logger
}

// NewHandler wraps the router as CORS -> logging -> rate limit -> authentication.
// Throttled responses still carry CORS headers and are logged; preflights are neither.
func NewHandler(router http.Handler, opts HandlerOptions) (http.Handler, error) {
	var handler http.Handler = router
	handler = middleware.Authenticate(opts.Verifier, opts.Logger)(handler)
	handler, err := middleware.RateLimit(opts.RateLimit, opts.LimiterStore, opts.Logger, handler)
	if err != nil {
		return nil, err
	}
	handler = middleware.LoggingMiddleware(opts.Logger, handler)
	return middleware.CORS(opts.AllowedOrigins, handler), nil
}

func handle(mux *http.ServeMux, pattern string, handler http.Handler) {
	mux.Handle(pattern, handler)
	mux.Handle(pattern+"/{$}", handler)
}

func healthz(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.ErrorContext(r.Context(), "health check failed", "err", err)
			h.WriteJSONError(w, http.StatusServiceUnavailable, h.ErrCodeInternalError, "database unavailable")
			return
		}
		h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
