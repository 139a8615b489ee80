package controllers

import (
	"log/slog"
	"net/http"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// UpdateProfileRequest is the request body for PATCH /profile/me/. Omitted fields are unchanged.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name" validate:"omitempty,max=255"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	Location       *string `json:"location" validate:"omitempty,max=255"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,max=500"`
}

type ProfileController struct {
	Logger  *slog.Logger
	Service domain.ProfileService
}

func NewProfileController(logger *slog.Logger, svc domain.ProfileService) *ProfileController {
	return &ProfileController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMe godoc
// @Summary Get own profile
// @Description Created empty on first access.
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /profile/me/ [get]
func (c *ProfileController) GetMe(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Service.GetOwnProfile(r.Context(), middleware.PrincipalFromContext(r.Context()))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// UpdateMe godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} helpers.APIError "code: invalid or bad_request"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /profile/me/ [patch]
func (c *ProfileController) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	profile, err := c.Service.UpdateOwnProfile(r.Context(), middleware.PrincipalFromContext(r.Context()), domain.ProfileFields{
		FullName:       req.FullName,
		Bio:            req.Bio,
		Location:       req.Location,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}
