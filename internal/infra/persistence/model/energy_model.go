package model

import (
	"time"

	"github.com/google/uuid"
)

// EnergyRecordModel mirrors the 'energy_records' table. The per-day uniqueness
// of (user_id, energy_type) is enforced by the service inside a transaction,
// not by a constraint, because the day boundary is timezone-dependent.
type EnergyRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_energy_user_type_created,priority:1"`
	EnergyType  string    `gorm:"type:varchar(20);not null;index:idx_energy_user_type_created,priority:2"`
	EnergyValue int       `gorm:"not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_energy_user_type_created,priority:3"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnergyRecordModel) TableName() string {
	return "energy_records"
}
