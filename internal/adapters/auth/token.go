package auth

import (
	"errors"
	"fmt"
	"time"

	"eventapi/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for malformed, expired or foreign tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// Values of the token_type claim. An access token is never accepted as a refresh token and vice versa.
const (
	accessTokenUse  = "access"
	refreshTokenUse = "refresh"
)

type jwtClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	TokenUse string `json:"token_type"`
}

// JWTManager issues and verifies HS256 access and refresh tokens.
type JWTManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

var (
	_ domain.TokenIssuer   = (*JWTManager)(nil)
	_ domain.TokenVerifier = (*JWTManager)(nil)
)

// NewJWTManager returns a JWTManager signing with secret. issuer is written to and required in the iss claim.
func NewJWTManager(secret, issuer string) *JWTManager {
	return &JWTManager{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Issue returns a signed access token.
func (m *JWTManager) Issue(userID, username string, expiry time.Duration) (string, error) {
	return m.sign(userID, username, accessTokenUse, expiry)
}

// IssueRefresh returns a signed refresh token. It is only accepted by VerifyRefresh.
func (m *JWTManager) IssueRefresh(userID, username string, expiry time.Duration) (string, error) {
	return m.sign(userID, username, refreshTokenUse, expiry)
}

// Verify checks an access token and returns its subject.
func (m *JWTManager) Verify(tokenString string) (string, error) {
	return m.verify(tokenString, accessTokenUse)
}

// VerifyRefresh checks a refresh token and returns its subject.
func (m *JWTManager) VerifyRefresh(tokenString string) (string, error) {
	return m.verify(tokenString, refreshTokenUse)
}

func (m *JWTManager) sign(userID, username, use string, expiry time.Duration) (string, error) {
	now := m.now()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
		Username: username,
		TokenUse: use,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (m *JWTManager) verify(tokenString, use string) (string, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" || claims.TokenUse != use {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
