package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus is the lifecycle state of a registered product unit.
// Only active products pass verification.
type ProductStatus string

const (
	ProductStatusActive    ProductStatus = "active"
	ProductStatusSuspended ProductStatus = "suspended"
	ProductStatusRecalled  ProductStatus = "recalled"
)

// Product is one physical product unit registered for authenticity tracking.
// ChipID, SNCode and AntiFakeCode are three independent unique lookup keys.
type Product struct {
	ID                uuid.UUID
	ChipID            string
	SNCode            string
	QRCode            string
	ProductName       string
	ProductModel      string
	BatchNumber       string
	ManufactureDate   string // Date stamped by the factory, YYYY-MM-DD; empty when unknown.
	FactoryLocation   string
	ProductionLine    string
	OperatorID        uuid.UUID // The account that registered this unit.
	AntiFakeCode      string
	Status            ProductStatus
	VerificationCount int64
	LastVerifiedAt    *time.Time
	Metadata          map[string]any
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ProductUpdate carries the mutable fields of a partial product update.
// Nil pointers leave the stored value untouched.
type ProductUpdate struct {
	ProductName  *string
	ProductModel *string
	BatchNumber  *string
	Status       *ProductStatus
	Metadata     map[string]any
}

// ProductFilter narrows a product listing. All fields are exact-match and
// combined with AND; zero values are ignored.
type ProductFilter struct {
	ChipID      string
	SNCode      string
	BatchNumber string
	Status      string
}
