package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/domain"
)

// RegisterRequest is the request body for POST /auth/register/
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenRequest is the request body for POST /auth/token/
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest is the request body for POST /auth/token/refresh/
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a user
// @Description Username must be unique; password at least 8 characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Credentials"
// @Success 201 {object} domain.User
// @Failure 400 {object} helpers.APIError "code: invalid, conflict or bad_request"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /auth/register/ [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), strings.TrimSpace(req.Username), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Token godoc
// @Summary Obtain an access token
// @Description Exchanges username and password for a Bearer JWT and a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body TokenRequest true "Credentials"
// @Success 200 {object} domain.AccessToken
// @Failure 400 {object} helpers.APIError "code: invalid or bad_request"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /auth/token/ [post]
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.IssueToken(r.Context(), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Invalid credentials.")
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, token)
}

// Refresh godoc
// @Summary Refresh an access token
// @Description Exchanges a refresh token for a new access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} domain.AccessToken
// @Failure 400 {object} helpers.APIError "code: invalid or bad_request"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /auth/token/refresh/ [post]
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Service.RefreshToken(r.Context(), strings.TrimSpace(req.Refresh))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Token is invalid or expired.")
			return
		}
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, token)
}
