package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// EventRequest is the request body for POST /events/ and PUT/PATCH /events/{eventID}/.
// Omitted fields keep their current value on PATCH; organizer is never read from input.
type EventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=255"`
	StartTime   *time.Time `json:"start_time" swaggertype:"string" format:"date-time"`
	EndTime     *time.Time `json:"end_time" swaggertype:"string" format:"date-time"`
	IsPublic    *bool      `json:"is_public"`
	Invited     *[]string  `json:"invited"`
}

func (req EventRequest) fields() domain.EventFields {
	return domain.EventFields{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsPublic:    req.IsPublic,
		Invited:     req.Invited,
	}
}

// missingForReplace returns the first required field absent from a PUT body.
func (req EventRequest) missingForReplace() string {
	switch {
	case req.Title == nil:
		return "title"
	case req.StartTime == nil:
		return "start_time"
	case req.EndTime == nil:
		return "end_time"
	}
	return ""
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Public events for anonymous callers; public, organized and invited events for authenticated callers.
// @Tags events
// @Produce json
// @Param is_public query bool false "Filter by visibility"
// @Param location query string false "Exact location"
// @Param organizer query string false "Organizer user ID (UUID)"
// @Param search query string false "Case-insensitive match on title, description and location"
// @Param ordering query string false "start_time, -start_time, created_at or -created_at" default(start_time)
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Items per page (max 100)" default(10)
// @Success 200 {object} helpers.Page[domain.Event]
// @Failure 400 {object} helpers.APIError "code: invalid"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/ [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.EventFilter{
		Location: q.Get("location"),
		Search:   strings.TrimSpace(q.Get("search")),
		Ordering: q.Get("ordering"),
	}
	if raw := q.Get("is_public"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalid, "is_public: Enter a valid boolean.")
			return
		}
		filter.IsPublic = &v
	}
	if raw := q.Get("organizer"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalid, "organizer: Select a valid choice.")
			return
		}
		filter.OrganizerID = id.String()
	}
	params := h.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), middleware.PrincipalFromContext(r.Context()), filter, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, h.NewPage(events, params, total))
}

// GetEvent godoc
// @Summary Get an event
// @Description Public events are readable by anyone; private events only by the organizer and invited users.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} domain.Event
// @Failure 403 {object} helpers.APIError "code: permission_denied"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/ [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description The caller becomes the organizer. Invited users are notified by email.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.APIError "code: invalid or bad_request"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/ [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), middleware.PrincipalFromContext(r.Context()), req.fields())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Organizer only. PATCH merges the given fields; PUT requires title, start_time and end_time. Sending invited replaces the invited set.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body EventRequest true "Fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.APIError "code: invalid or bad_request"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 403 {object} helpers.APIError "code: permission_denied"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/ [patch]
// @Router /events/{eventID}/ [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req EventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	if r.Method == http.MethodPut {
		if field := req.missingForReplace(); field != "" {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeInvalid, field+": This field is required.")
			return
		}
	}
	event, err := c.Service.UpdateEvent(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID, req.fields())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Organizer only. RSVPs, reviews and invitations are removed with the event.
// @Tags events
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "No Content"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 403 {object} helpers.APIError "code: permission_denied"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/ [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
