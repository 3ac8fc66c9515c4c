package usecase

import (
	"context"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordEnergyInput is one daily wellness report.
type RecordEnergyInput struct {
	EnergyType  string `json:"energy_type" validate:"required"`
	EnergyValue int    `json:"energy_value" validate:"required"`
	Description string `json:"description"`
}

// Energy record actions reported back to the caller.
const (
	EnergyActionCreated = "created"
	EnergyActionUpdated = "updated"
)

// RecordEnergyOutput returns the stored record and whether it was created or updated.
type RecordEnergyOutput struct {
	Record *entity.EnergyRecord
	Action string
}

// TodayEnergyOutput lists a user's records for the current day, newest first.
type TodayEnergyOutput struct {
	Records []*entity.EnergyRecord
	Count   int
	Today   string // The resolved calendar day, YYYY-MM-DD.
}

// EnergyUsecase defines the interface for daily energy tracking operations.
type EnergyUsecase interface {
	// RecordToday upserts the user's record for (today, energy type):
	// the first report of a type creates a row, later reports overwrite it.
	RecordToday(ctx context.Context, userID uuid.UUID, input *RecordEnergyInput) (*RecordEnergyOutput, error)

	// ListToday returns all of the user's records for the current day.
	ListToday(ctx context.Context, userID uuid.UUID) (*TodayEnergyOutput, error)
}
