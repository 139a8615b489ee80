package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"eventapi/internal/delivery/http/middleware"
	"eventapi/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// newRequest builds a request with path values set and, when userID is non-empty, an authenticated principal.
func newRequest(method, target, body, userID string, pathValues map[string]string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range pathValues {
		r.SetPathValue(k, v)
	}
	if userID != "" {
		r = r.WithContext(middleware.SetUserID(r.Context(), userID))
	}
	return r
}

type fakeEventService struct {
	listFn   func(principal domain.Principal, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error)
	getFn    func(principal domain.Principal, id string) (*domain.Event, error)
	createFn func(principal domain.Principal, fields domain.EventFields) (*domain.Event, error)
	updateFn func(principal domain.Principal, id string, fields domain.EventFields) (*domain.Event, error)
	deleteFn func(principal domain.Principal, id string) error
}

func (f *fakeEventService) ListEvents(_ context.Context, principal domain.Principal, filter domain.EventFilter, page domain.PaginationParams) ([]*domain.Event, int, error) {
	return f.listFn(principal, filter, page)
}

func (f *fakeEventService) GetEvent(_ context.Context, principal domain.Principal, id string) (*domain.Event, error) {
	return f.getFn(principal, id)
}

func (f *fakeEventService) CreateEvent(_ context.Context, principal domain.Principal, fields domain.EventFields) (*domain.Event, error) {
	return f.createFn(principal, fields)
}

func (f *fakeEventService) UpdateEvent(_ context.Context, principal domain.Principal, id string, fields domain.EventFields) (*domain.Event, error) {
	return f.updateFn(principal, id, fields)
}

func (f *fakeEventService) DeleteEvent(_ context.Context, principal domain.Principal, id string) error {
	return f.deleteFn(principal, id)
}

type fakeRSVPService struct {
	setFn    func(principal domain.Principal, eventID string, status domain.RSVPStatus) (*domain.RSVP, error)
	updateFn func(principal domain.Principal, eventID, userID string, status domain.RSVPStatus) (*domain.RSVP, error)
}

func (f *fakeRSVPService) SetOwnRSVP(_ context.Context, principal domain.Principal, eventID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	return f.setFn(principal, eventID, status)
}

func (f *fakeRSVPService) UpdateRSVPFor(_ context.Context, principal domain.Principal, eventID, userID string, status domain.RSVPStatus) (*domain.RSVP, error) {
	return f.updateFn(principal, eventID, userID, status)
}

type fakeReviewService struct {
	listFn   func(eventID string, page domain.PaginationParams) ([]*domain.Review, int, error)
	createFn func(principal domain.Principal, eventID string, input domain.ReviewInput) (*domain.Review, error)
}

func (f *fakeReviewService) ListReviews(_ context.Context, eventID string, page domain.PaginationParams) ([]*domain.Review, int, error) {
	return f.listFn(eventID, page)
}

func (f *fakeReviewService) CreateReview(_ context.Context, principal domain.Principal, eventID string, input domain.ReviewInput) (*domain.Review, error) {
	return f.createFn(principal, eventID, input)
}

type fakeAuthService struct {
	registerFn func(username, email, password string) (*domain.User, error)
	tokenFn    func(username, password string) (*domain.AccessToken, error)
	refreshFn  func(refresh string) (*domain.AccessToken, error)
}

func (f *fakeAuthService) Register(_ context.Context, username, email, password string) (*domain.User, error) {
	return f.registerFn(username, email, password)
}

func (f *fakeAuthService) IssueToken(_ context.Context, username, password string) (*domain.AccessToken, error) {
	return f.tokenFn(username, password)
}

func (f *fakeAuthService) RefreshToken(_ context.Context, refresh string) (*domain.AccessToken, error) {
	return f.refreshFn(refresh)
}

type fakeProfileService struct {
	getFn    func(principal domain.Principal) (*domain.Profile, error)
	updateFn func(principal domain.Principal, fields domain.ProfileFields) (*domain.Profile, error)
}

func (f *fakeProfileService) GetOwnProfile(_ context.Context, principal domain.Principal) (*domain.Profile, error) {
	return f.getFn(principal)
}

func (f *fakeProfileService) UpdateOwnProfile(_ context.Context, principal domain.Principal, fields domain.ProfileFields) (*domain.Profile, error) {
	return f.updateFn(principal, fields)
}
