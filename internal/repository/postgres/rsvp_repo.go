package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventapi/internal/domain"
)

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

// Upsert relies on the (event_id, user_id) unique constraint so concurrent calls converge on one row.
func (r *rsvpRepository) Upsert(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		WITH up AS (
			INSERT INTO rsvps (event_id, user_id, status, updated_at)
			VALUES ($1, $2, $3, NOW())
			ON CONFLICT (event_id, user_id)
			DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at
			RETURNING id, event_id, user_id, status, updated_at
		)
		SELECT up.id, up.event_id, up.user_id, u.username, u.email, up.status, up.updated_at
		FROM up
		JOIN users u ON u.id = up.user_id
	`
	got, err := scanRSVP(r.DB.QueryRowContext(ctx, query, rsvp.EventID, rsvp.UserID, rsvp.Status))
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}
	*rsvp = *got
	return nil
}

func (r *rsvpRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.RSVP, error) {
	query := `
		SELECT r.id, r.event_id, r.user_id, u.username, u.email, r.status, r.updated_at
		FROM rsvps r
		JOIN users u ON u.id = r.user_id
		WHERE r.event_id = $1 AND r.user_id = $2
	`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, eventID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

func (r *rsvpRepository) UpdateStatus(ctx context.Context, id string, status domain.RSVPStatus) (*domain.RSVP, error) {
	query := `
		WITH up AS (
			UPDATE rsvps SET status = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING id, event_id, user_id, status, updated_at
		)
		SELECT up.id, up.event_id, up.user_id, u.username, u.email, up.status, up.updated_at
		FROM up
		JOIN users u ON u.id = up.user_id
	`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return rsvp, nil
}

func scanRSVP(row rowScanner) (*domain.RSVP, error) {
	rsvp := &domain.RSVP{User: &domain.UserSummary{}}
	if err := row.Scan(&rsvp.ID, &rsvp.EventID, &rsvp.UserID, &rsvp.User.Username, &rsvp.User.Email, &rsvp.Status, &rsvp.UpdatedAt); err != nil {
		return nil, err
	}
	rsvp.User.ID = rsvp.UserID
	return rsvp, nil
}
