package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. chip_id, sn_code and
// anti_fake_code each carry their own unique constraint; lookups resolve a
// unit through any one of them.
type ProductModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChipID            string    `gorm:"type:varchar(100);unique;not null"`
	SNCode            string    `gorm:"type:varchar(100);unique;not null"`
	QRCode            string    `gorm:"type:varchar(255)"`
	ProductName       string    `gorm:"type:varchar(255);not null"`
	ProductModel      string    `gorm:"type:varchar(100)"`
	BatchNumber       string    `gorm:"type:varchar(100);index"`
	ManufactureDate   string    `gorm:"type:varchar(10)"`
	FactoryLocation   string    `gorm:"type:varchar(255)"`
	ProductionLine    string    `gorm:"type:varchar(100)"`
	OperatorID        uuid.UUID `gorm:"type:uuid;not null"`
	AntiFakeCode      string    `gorm:"type:varchar(100);unique;not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:active;index"`
	VerificationCount int64     `gorm:"not null;default:0"`
	LastVerifiedAt    *time.Time
	Metadata          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"index"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
