package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventapi/internal/domain"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 150
	minPasswordLen = 8
	tokenType      = "Bearer"
)

var (
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)
)

// errInvalidCredentials is returned for unknown users and wrong passwords alike.
var errInvalidCredentials = fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)

var errInvalidRefreshToken = fmt.Errorf("%w: invalid refresh token", domain.ErrUnauthorized)

type authService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	refreshExpiry  time.Duration
	contextTimeout time.Duration
}

// NewAuthService creates an AuthService with the given repository and auth ports.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry, refreshExpiry, timeout time.Duration) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		refreshExpiry:  refreshExpiry,
		contextTimeout: timeout,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if n := len([]rune(username)); n < minUsernameLen || n > maxUsernameLen || !usernameRegexp.MatchString(username) {
		return nil, domain.NewValidationError("username", fmt.Sprintf("username: Must be %d to %d characters of letters, digits and @/./+/-/_ only.", minUsernameLen, maxUsernameLen))
	}
	if !emailRegexp.MatchString(email) {
		return nil, domain.NewValidationError("email", "email: Enter a valid email address.")
	}
	if len(password) < minPasswordLen {
		return nil, domain.NewValidationError("password", fmt.Sprintf("password: Ensure this field has at least %d characters.", minPasswordLen))
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := domain.NewUser(username, email, hash, salt, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *authService) IssueToken(ctx context.Context, username, password string) (*domain.AccessToken, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return nil, errInvalidCredentials
	}

	token, err := s.accessToken(user)
	if err != nil {
		return nil, err
	}
	token.Refresh, err = s.tokenIssuer.IssueRefresh(user.ID, user.Username, s.refreshExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return token, nil
}

// RefreshToken issues a new access token for the subject of refresh. The user must still exist.
func (s *authService) RefreshToken(ctx context.Context, refresh string) (*domain.AccessToken, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	userID, err := s.tokenIssuer.VerifyRefresh(refresh)
	if err != nil {
		return nil, errInvalidRefreshToken
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidRefreshToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return s.accessToken(user)
}

func (s *authService) accessToken(user *domain.User) (*domain.AccessToken, error) {
	token, err := s.tokenIssuer.Issue(user.ID, user.Username, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AccessToken{
		Access:    token,
		TokenType: tokenType,
		ExpiresIn: int(s.tokenExpiry.Seconds()),
	}, nil
}
