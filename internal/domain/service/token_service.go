package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the decoded, validated content of a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Type   string // "access" or "refresh"
}

// TokenService issues and validates the access/refresh token pair that scopes
// every authenticated request to one user identity.
type TokenService interface {
	// GenerateTokens creates a new access and refresh token for a user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*TokenClaims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the hash under which a refresh token is stored at rest.
	HashToken(tokenString string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
