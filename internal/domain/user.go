package domain

import (
	"context"
	"time"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(username, email, passwordHash, salt string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Salt:         salt,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Summary returns the public projection of the user.
func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserSummary is the expanded form of a user reference (organizer, RSVP owner, reviewer).
// swagger:model UserSummary
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Principal is the actor making a request. The zero value is anonymous.
type Principal struct {
	UserID string
}

// Anonymous returns the unauthenticated principal.
func Anonymous() Principal { return Principal{} }

// Authenticated returns a principal for the given user ID.
func Authenticated(userID string) Principal { return Principal{UserID: userID} }

// IsAuthenticated reports whether the principal carries an identity.
func (p Principal) IsAuthenticated() bool { return p.UserID != "" }

// Is reports whether the principal is the given user. Always false for anonymous principals.
func (p Principal) Is(userID string) bool {
	return p.IsAuthenticated() && userID != "" && p.UserID == userID
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues access and refresh tokens (e.g. JWT) for an authenticated user
// and redeems refresh tokens.
type TokenIssuer interface {
	Issue(userID, username string, expiry time.Duration) (string, error)
	IssueRefresh(userID, username string, expiry time.Duration) (string, error)
	VerifyRefresh(token string) (userID string, err error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// ListByIDs returns the users that exist among ids, in no particular order.
	ListByIDs(ctx context.Context, ids []string) ([]*User, error)
}

// AccessToken is the result of a successful credential exchange.
// swagger:model AccessToken
// Refresh is empty when the token came from a refresh exchange.
type AccessToken struct {
	Access    string `json:"access"`
	Refresh   string `json:"refresh,omitempty"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// AuthService registers users and exchanges credentials for tokens.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*User, error)
	IssueToken(ctx context.Context, username, password string) (*AccessToken, error)
	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, refresh string) (*AccessToken, error)
}
