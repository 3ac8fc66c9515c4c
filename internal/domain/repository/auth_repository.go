package repository

import (
	"context"
	"errors"

	"trace/internal/domain/entity"
)

// ErrAuthNotFound is returned when no credential matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines operations for credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider-side identifier.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
