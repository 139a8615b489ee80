package domain

import (
	"context"
	"time"
)

// Review rating bounds (inclusive).
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's one-time, immutable rating of an event.
// swagger:model Review
type Review struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event"`
	UserID    string       `json:"-"`
	User      *UserSummary `json:"user"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReviewRepository defines storage operations for reviews.
type ReviewRepository interface {
	ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error)
	// Create inserts the review; a duplicate (event, user) pair returns ErrAlreadyReviewed.
	Create(ctx context.Context, review *Review) error
	// ListByEventID returns one page of reviews, newest first, and the total count.
	ListByEventID(ctx context.Context, eventID string, page PaginationParams) ([]*Review, int, error)
}

// ReviewService defines review operations.
type ReviewService interface {
	ListReviews(ctx context.Context, eventID string, page PaginationParams) ([]*Review, int, error)
	CreateReview(ctx context.Context, principal Principal, eventID string, input ReviewInput) (*Review, error)
}

// ReviewInput holds the client-supplied fields of a new review. Err is set when a field
// could not be read as its type and is reported only after the duplicate check.
type ReviewInput struct {
	Rating  int
	Comment string
	Err     error
}
