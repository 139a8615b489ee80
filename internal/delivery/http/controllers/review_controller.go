package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	h "eventapi/internal/delivery/http/helpers"
	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// ReviewRequest is the request body for POST /events/{eventID}/reviews/.
// Fields are kept raw so a duplicate review reports the conflict whatever their values.
type ReviewRequest struct {
	Rating  json.RawMessage `json:"rating" swaggertype:"integer" minimum:"1" maximum:"5"`
	Comment json.RawMessage `json:"comment" swaggertype:"string"`
}

func (req ReviewRequest) input() domain.ReviewInput {
	var in domain.ReviewInput
	switch rating, ok := h.IntField(req.Rating); {
	case len(req.Rating) == 0:
		in.Err = domain.NewValidationError("rating", "rating: This field is required.")
	case h.IsNull(req.Rating):
		in.Err = domain.NewValidationError("rating", "rating: This field may not be null.")
	case !ok:
		in.Err = domain.NewValidationError("rating", "rating: A valid integer is required.")
	default:
		in.Rating = rating
	}
	comment, ok := h.StringField(req.Comment)
	if !ok && in.Err == nil {
		in.Err = domain.NewValidationError("comment", "comment: Not a valid string.")
	}
	in.Comment = comment
	return in
}

type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{
		Logger:  logger,
		Service: svc,
	}
}

// ListReviews godoc
// @Summary List reviews of an event
// @Description Newest first. Open to anyone.
// @Tags reviews
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Items per page (max 100)" default(10)
// @Success 200 {object} helpers.Page[domain.Review]
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/reviews/ [get]
func (c *ReviewController) ListReviews(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	params := h.ParsePagination(r)
	reviews, total, err := c.Service.ListReviews(r.Context(), eventID, params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, h.NewPage(reviews, params, total))
}

// CreateReview godoc
// @Summary Review an event
// @Description One review per user and event. Reviews cannot be edited.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param review body ReviewRequest true "Rating 1-5 and comment"
// @Success 201 {object} domain.Review
// @Failure 400 {object} helpers.APIError "code: invalid or conflict"
// @Failure 401 {object} helpers.APIError "code: not_authenticated"
// @Failure 404 {object} helpers.APIError "code: not_found"
// @Failure 500 {object} helpers.APIError "code: internal_error"
// @Router /events/{eventID}/reviews/ [post]
func (c *ReviewController) CreateReview(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathID(w, r, "eventID")
	if !ok {
		return
	}
	var req ReviewRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	review, err := c.Service.CreateReview(r.Context(), middleware.PrincipalFromContext(r.Context()), eventID, req.input())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, review)
}
