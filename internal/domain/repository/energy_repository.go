package repository

import (
	"context"
	"errors"
	"time"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEnergyRecordNotFound is returned when no record matches the lookup.
var ErrEnergyRecordNotFound = errors.New("energy record not found")

// EnergyRepository defines operations for daily energy record persistence.
type EnergyRepository interface {
	// FindByUserTypeWithin retrieves the single record of the given type whose
	// created_at falls inside [from, to). Used for the per-day upsert decision.
	FindByUserTypeWithin(ctx context.Context, userID uuid.UUID, energyType entity.EnergyType, from, to time.Time) (*entity.EnergyRecord, error)

	// ListByUserWithin retrieves all of a user's records created inside [from, to), newest first.
	ListByUserWithin(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.EnergyRecord, error)

	// Create persists a new record.
	Create(ctx context.Context, record *entity.EnergyRecord) error

	// Update overwrites value and description of an existing record.
	Update(ctx context.Context, record *entity.EnergyRecord) error
}
