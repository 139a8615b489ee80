package domain

import "context"

// Profile holds the optional public details of a user. One per user.
// swagger:model Profile
type Profile struct {
	ID             string       `json:"id"`
	UserID         string       `json:"-"`
	User           *UserSummary `json:"user"`
	FullName       string       `json:"full_name"`
	Bio            string       `json:"bio"`
	Location       string       `json:"location"`
	ProfilePicture *string      `json:"profile_picture"`
}

// ProfileFields carries a partial profile update. Nil fields are unchanged.
type ProfileFields struct {
	FullName       *string
	Bio            *string
	Location       *string
	ProfilePicture *string
}

// ProfileRepository defines storage for profiles.
type ProfileRepository interface {
	// GetOrCreate returns the user's profile, inserting an empty one if none exists.
	GetOrCreate(ctx context.Context, userID string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
}

// ProfileService manages the caller's own profile.
type ProfileService interface {
	GetOwnProfile(ctx context.Context, principal Principal) (*Profile, error)
	UpdateOwnProfile(ctx context.Context, principal Principal, fields ProfileFields) (*Profile, error)
}
