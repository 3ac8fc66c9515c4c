package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the authentication mechanism of an Authentication record.
type ProviderType string

// ProviderTypeEmail is the email/password provider.
const ProviderTypeEmail ProviderType = "email"

// Authentication stores one credential for a user. A user may hold several
// (one per provider), keyed by (provider, provider_user_id).
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // For the email provider this is the email address itself.
	PasswordHash   string // bcrypt hash; empty for providers without passwords.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RefreshToken is a persisted session credential. Only the SHA-256 hash of the
// issued token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
