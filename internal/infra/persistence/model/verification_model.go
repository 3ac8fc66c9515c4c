package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VerificationRecordModel mirrors the 'verification_records' table. ProductID
// is nullable: failed lookups are recorded without a matching product.
type VerificationRecordModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index"`
	Method     string     `gorm:"type:varchar(50);not null"`
	Location   string     `gorm:"type:varchar(255)"`
	DeviceInfo datatypes.JSON `gorm:"type:jsonb"`
	Result     bool       `gorm:"not null"`
	Notes      string     `gorm:"type:text"`
	CreatedAt  time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VerificationRecordModel) TableName() string {
	return "verification_records"
}
