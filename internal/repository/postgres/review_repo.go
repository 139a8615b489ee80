package postgres

import (
	"context"
	"database/sql"

	"eventapi/internal/domain"
)

type reviewRepository struct {
	DB *sql.DB
}

func NewReviewRepository(db *sql.DB) domain.ReviewRepository {
	return &reviewRepository{DB: db}
}

func (r *reviewRepository) ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE event_id = $1 AND user_id = $2)`
	if err := r.DB.QueryRowContext(ctx, query, eventID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	query := `
		WITH ins AS (
			INSERT INTO reviews (event_id, user_id, rating, comment, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, user_id, created_at
		)
		SELECT ins.id, ins.created_at, u.username, u.email
		FROM ins
		JOIN users u ON u.id = ins.user_id
	`
	user := &domain.UserSummary{ID: review.UserID}
	err := r.DB.QueryRowContext(ctx, query, review.EventID, review.UserID, review.Rating, review.Comment, review.CreatedAt).
		Scan(&review.ID, &review.CreatedAt, &user.Username, &user.Email)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyReviewed
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return err
	}
	review.User = user
	return nil
}

func (r *reviewRepository) ListByEventID(ctx context.Context, eventID string, page domain.PaginationParams) ([]*domain.Review, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews WHERE event_id = $1`, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.event_id, r.user_id, u.username, u.email, r.rating, r.comment, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1
		ORDER BY r.created_at DESC, r.id
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, page.Limit(), page.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rv := &domain.Review{User: &domain.UserSummary{}}
		if err := rows.Scan(&rv.ID, &rv.EventID, &rv.UserID, &rv.User.Username, &rv.User.Email, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, 0, err
		}
		rv.User.ID = rv.UserID
		reviews = append(reviews, rv)
	}
	return reviews, total, rows.Err()
}
