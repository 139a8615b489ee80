package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventapi/internal/domain"
)

func newReviewFixture(t *testing.T) (domain.ReviewService, *fakeReviewRepo, *domain.User, *domain.Event) {
	t.Helper()
	users := newFakeUserRepo()
	events := newFakeEventRepo(users)
	reviews := &fakeReviewRepo{}
	alice := users.add("alice")
	event, err := NewEventService(events, users, nil, "", testLogger, testTimeout).
		CreateEvent(context.Background(), domain.Authenticated(alice.ID), eventFields("E2", true))
	require.NoError(t, err)
	return NewReviewService(reviews, events, testTimeout), reviews, alice, event
}

func TestReviewService_CreateReview_onlyOnce(t *testing.T) {
	ctx := context.Background()
	svc, reviews, alice, event := newReviewFixture(t)
	pa := domain.Authenticated(alice.ID)

	created, err := svc.CreateReview(ctx, pa, event.ID, domain.ReviewInput{Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, event.ID, created.EventID)
	assert.Equal(t, alice.ID, created.UserID)
	assert.Equal(t, 5, created.Rating)
	assert.NotEmpty(t, created.ID)

	for _, rating := range []int{4, 0, 6} {
		_, err = svc.CreateReview(ctx, pa, event.ID, domain.ReviewInput{Rating: rating, Comment: "again"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict), "rating %d: %v", rating, err)
		assert.Contains(t, err.Error(), "already reviewed")
	}
	assert.Len(t, reviews.reviews, 1)
}

func TestReviewService_CreateReview_unreadableFieldAfterDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, reviews, alice, event := newReviewFixture(t)
	pa := domain.Authenticated(alice.ID)
	badRating := domain.ReviewInput{Err: domain.NewValidationError("rating", "rating: A valid integer is required.")}

	_, err := svc.CreateReview(ctx, pa, event.ID, badRating)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, "rating: A valid integer is required.", err.Error())
	assert.Empty(t, reviews.reviews)

	_, err = svc.CreateReview(ctx, pa, event.ID, domain.ReviewInput{Rating: 4})
	require.NoError(t, err)

	_, err = svc.CreateReview(ctx, pa, event.ID, badRating)
	assert.True(t, errors.Is(err, domain.ErrAlreadyReviewed), "got %v", err)
	assert.Len(t, reviews.reviews, 1)
}

func TestReviewService_CreateReview_eventDeletedMidway(t *testing.T) {
	svc, reviews, alice, event := newReviewFixture(t)
	reviews.createErr = domain.ErrNotFound

	_, err := svc.CreateReview(context.Background(), domain.Authenticated(alice.ID), event.ID, domain.ReviewInput{Rating: 4})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "got %v", err)
	assert.Empty(t, reviews.reviews)
}

func TestReviewService_CreateReview_ratingBounds(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		rating  int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{5, false},
		{6, true},
		{-3, true},
	}
	for _, tt := range tests {
		svc, _, alice, event := newReviewFixture(t)
		_, err := svc.CreateReview(ctx, domain.Authenticated(alice.ID), event.ID, domain.ReviewInput{Rating: tt.rating})
		if tt.wantErr {
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "rating %d", tt.rating)
			continue
		}
		assert.NoError(t, err, "rating %d", tt.rating)
	}
}

func TestReviewService_CreateReview_errors(t *testing.T) {
	ctx := context.Background()
	svc, _, alice, event := newReviewFixture(t)

	_, err := svc.CreateReview(ctx, domain.Anonymous(), event.ID, domain.ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = svc.CreateReview(ctx, domain.Authenticated(alice.ID), uuid.NewString(), domain.ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = svc.CreateReview(ctx, domain.Anonymous(), uuid.NewString(), domain.ReviewInput{Rating: 5})
	assert.True(t, errors.Is(err, domain.ErrNotFound), "missing event is reported before authentication")
}

func TestReviewService_CreateReview_uniqueViolationIsConflict(t *testing.T) {
	ctx := context.Background()
	svc, reviews, alice, event := newReviewFixture(t)
	pa := domain.Authenticated(alice.ID)

	_, err := svc.CreateReview(ctx, pa, event.ID, domain.ReviewInput{Rating: 3})
	require.NoError(t, err)

	reviews.skipExists = true
	_, err = svc.CreateReview(ctx, pa, event.ID, domain.ReviewInput{Rating: 3})
	assert.True(t, errors.Is(err, domain.ErrAlreadyReviewed))
}

func TestReviewService_ListReviews(t *testing.T) {
	ctx := context.Background()
	svc, reviews, _, event := newReviewFixture(t)

	older := time.Now().Add(-time.Hour)
	reviews.reviews = []*domain.Review{
		{ID: "r1", EventID: event.ID, UserID: "u1", Rating: 3, CreatedAt: older},
		{ID: "r2", EventID: event.ID, UserID: "u2", Rating: 5, CreatedAt: time.Now()},
		{ID: "r3", EventID: "other", UserID: "u1", Rating: 1, CreatedAt: time.Now()},
	}

	got, total, err := svc.ListReviews(ctx, event.ID, domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, got, 2)
	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "r1", got[1].ID)

	_, _, err = svc.ListReviews(ctx, uuid.NewString(), domain.PaginationParams{Page: 1, PageSize: 10})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestReviewService_ListReviews_emptyIsNotNil(t *testing.T) {
	svc, _, _, event := newReviewFixture(t)
	got, total, err := svc.ListReviews(context.Background(), event.ID, domain.PaginationParams{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, 0, total)
}
