package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventapi/internal/domain"
)

type profileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) domain.ProfileRepository {
	return &profileRepository{DB: db}
}

func (r *profileRepository) GetOrCreate(ctx context.Context, userID string) (*domain.Profile, error) {
	if _, err := r.DB.ExecContext(ctx, `INSERT INTO profiles (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID); err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	query := `
		SELECT p.id, p.user_id, u.username, u.email, p.full_name, p.bio, p.location, p.profile_picture
		FROM profiles p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`
	p := &domain.Profile{User: &domain.UserSummary{}}
	var picture sql.NullString
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.User.Username, &p.User.Email, &p.FullName, &p.Bio, &p.Location, &picture,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.User.ID = p.UserID
	if picture.Valid {
		p.ProfilePicture = &picture.String
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles
		SET full_name = $1, bio = $2, location = $3, profile_picture = $4
		WHERE id = $5
	`
	var picture sql.NullString
	if p.ProfilePicture != nil {
		picture = sql.NullString{String: *p.ProfilePicture, Valid: true}
	}
	result, err := r.DB.ExecContext(ctx, query, p.FullName, p.Bio, p.Location, picture, p.ID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
