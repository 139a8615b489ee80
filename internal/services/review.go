package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventapi/internal/domain"
	"eventapi/internal/policy"
)

type reviewService struct {
	reviewRepo     domain.ReviewRepository
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewReviewService returns a ReviewService backed by the given repositories.
func NewReviewService(reviewRepo domain.ReviewRepository, eventRepo domain.EventRepository, timeout time.Duration) domain.ReviewService {
	return &reviewService{
		reviewRepo:     reviewRepo,
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *reviewService) ListReviews(ctx context.Context, eventID string, page domain.PaginationParams) ([]*domain.Review, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, 0, err
	}
	reviews, total, err := s.reviewRepo.ListByEventID(ctx, eventID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []*domain.Review{}
	}
	return reviews, total, nil
}

// CreateReview records the caller's only review of an event. A duplicate is reported before any field is validated.
func (s *reviewService) CreateReview(ctx context.Context, principal domain.Principal, eventID string, input domain.ReviewInput) (*domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.ensureEvent(ctx, eventID); err != nil {
		return nil, err
	}
	if !policy.CanCreateReview(principal) {
		return nil, domain.ErrUnauthorized
	}

	exists, err := s.reviewRepo.ExistsForEventAndUser(ctx, eventID, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if exists {
		return nil, domain.ErrAlreadyReviewed
	}
	if input.Err != nil {
		return nil, input.Err
	}
	if input.Rating < domain.MinRating || input.Rating > domain.MaxRating {
		return nil, domain.NewValidationError("rating", fmt.Sprintf("rating: Ensure this value is between %d and %d.", domain.MinRating, domain.MaxRating))
	}

	review := &domain.Review{
		EventID:   eventID,
		UserID:    principal.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyReviewed):
			return nil, domain.ErrAlreadyReviewed
		case errors.Is(err, domain.ErrNotFound):
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *reviewService) ensureEvent(ctx context.Context, eventID string) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	return nil
}
