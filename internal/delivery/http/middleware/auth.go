package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

var (
	errInvalidAuthFormat = errors.New("invalid authorization format")
	errMissingToken      = errors.New("missing token")
)

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// PrincipalFromContext returns the caller resolved by Authenticate or RequireAuth; anonymous if none.
func PrincipalFromContext(ctx context.Context) domain.Principal {
	if id, ok := UserIDFromContext(ctx); ok {
		return domain.Authenticated(id)
	}
	return domain.Anonymous()
}

// Authenticate resolves an optional Bearer token. Requests without an Authorization
// header pass through as anonymous; a present but invalid token is rejected with 401.
func Authenticate(verifier domain.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}
			userID, err := verifyHeader(verifier, auth)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected bearer token", "path", r.URL.Path, "err", err)
				writeAuthError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(SetUserID(r.Context(), userID)))
		})
	}
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the user ID in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); ok {
				next(w, r)
				return
			}
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Authentication credentials were not provided.")
				return
			}
			userID, err := verifyHeader(verifier, auth)
			if err != nil {
				logger.DebugContext(r.Context(), "rejected bearer token", "path", r.URL.Path, "err", err)
				writeAuthError(w, err)
				return
			}
			next(w, r.WithContext(SetUserID(r.Context(), userID)))
		}
	}
}

func verifyHeader(verifier domain.TokenVerifier, auth string) (string, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", errInvalidAuthFormat
	}
	token := strings.TrimSpace(auth[len(prefix):])
	if token == "" {
		return "", errMissingToken
	}
	return verifier.Verify(token)
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidAuthFormat):
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
	case errors.Is(err, errMissingToken):
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
	default:
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
	}
}
