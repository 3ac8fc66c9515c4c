package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnergyType enumerates the wellness dimensions a user can report.
type EnergyType string

const (
	EnergyTypePhysical  EnergyType = "physical"
	EnergyTypeMental    EnergyType = "mental"
	EnergyTypeEmotional EnergyType = "emotional"
)

// EnergyTypes lists every valid energy type, in reporting order.
var EnergyTypes = []EnergyType{EnergyTypePhysical, EnergyTypeMental, EnergyTypeEmotional}

// IsValid reports whether t is one of the known energy types.
func (t EnergyType) IsValid() bool {
	switch t {
	case EnergyTypePhysical, EnergyTypeMental, EnergyTypeEmotional:
		return true
	}

	return false
}

// EnergyRecord is one daily wellness report. At most one record exists per
// (user, type, calendar day); a second report the same day overwrites the first.
type EnergyRecord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        EnergyType
	Value       int
	Description string // Optional free-form note; empty when not provided.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
