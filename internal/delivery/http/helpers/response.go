package helpers

import (
	"encoding/json"
	"net/http"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeInvalid       = "invalid"
	ErrCodeConflict      = "conflict"
	ErrCodeUnauthorized  = "not_authenticated"
	ErrCodeForbidden     = "permission_denied"
	ErrCodeNotFound      = "not_found"
	ErrCodeRateLimited   = "throttled"
	ErrCodeInternalError = "internal_error"
)

// APIError is the body of every error response.
// swagger:model APIError
type APIError struct {
	Detail string `json:"detail"`
	Code   string `json:"code"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes data as the response body.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIError with the given code and detail message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIError{Detail: detail, Code: code})
}
