package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/domain"
)

const (
	detailNotFound        = "Not found."
	detailForbidden       = "You do not have permission to perform this action."
	detailUnauthenticated = "Authentication credentials were not provided."
)

// writeServiceError maps domain errors to HTTP responses. Conflicts are reported as 400.
func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var cerr *domain.ConflictError
	switch {
	case errors.As(err, &verr):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalid, verr.Message)
	case errors.As(err, &cerr):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeConflict, cerr.Message)
	case errors.Is(err, domain.ErrInvalidInput):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalid, err.Error())
	case errors.Is(err, domain.ErrConflict):
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeConflict, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, detailUnauthenticated)
	case errors.Is(err, domain.ErrForbidden):
		h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, detailForbidden)
	case errors.Is(err, domain.ErrNotFound):
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, detailNotFound)
	default:
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
	}
}

// pathID returns the named path value if it is a UUID. Otherwise it writes 404 and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		h.WriteJSONError(w, http.StatusNotFound, h.ErrCodeNotFound, detailNotFound)
		return "", false
	}
	return id.String(), true
}
