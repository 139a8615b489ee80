package controllers

import (
	"log/slog"
	"net/http"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// RSVPRequest is the request body for both RSVP endpoints.
type RSVPRequest struct {
	Status string `json:"status" enums:"Going,Maybe,Not Going"`
}

type RSVPController struct {
	Logger  *slog.Logger
	Service domain.RSVPService
}

func NewRSVPController(logger *slog.Logger, svc domain.RSVPService) *RSVPController {
	return &RSVPController{
		Logger:  logger,
		Service: svc,
	}
}

// SetOwnRSVP godoc
// @Summary RSVP to an event
// @Description Creates the caller's RSVP or overwrites its status.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param rsvp body RSVPRequest true "RSVP status"
// @Success 200 {object} domain.RSVP
// @Failure 400 {object} helpers.APIError "code: invalid"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/rsvp/ [post]
func (c *RSVPController) SetOwnRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req RSVPRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	rsvp, err := c.Service.SetOwnRSVP(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID, domain.RSVPStatus(req.Status))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rsvp)
}

// UpdateRSVP godoc
// @Summary Update a user's RSVP
// @Description Allowed for the RSVP owner and the event organizer.
// @Tags rsvps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param userID path string true "User ID (UUID)"
// @Param rsvp body RSVPRequest true "RSVP status"
// @Success 200 {object} domain.RSVP
// @Failure 400 {object} helpers.APIError "code: invalid"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 403 {object} helpers.APIError "code: permission_denied"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/rsvp/{userID}/ [patch]
func (c *RSVPController) UpdateRSVP(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	userID, ok := pathID(w, r, "userID")
	if !ok {
		return
	}
	var req RSVPRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	rsvp, err := c.Service.UpdateRSVPFor(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID, userID, domain.RSVPStatus(req.Status))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, rsvp)
}
