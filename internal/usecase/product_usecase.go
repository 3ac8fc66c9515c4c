package usecase

import (
	"context"
	"time"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput carries the fields of one product registration.
// AntiFakeCode is optional; a code is generated when absent.
type CreateProductInput struct {
	ChipID          string         `json:"chip_id" validate:"required"`
	SNCode          string         `json:"sn_code" validate:"required"`
	QRCode          string         `json:"qr_code"`
	ProductName     string         `json:"product_name"`
	ProductModel    string         `json:"product_model"`
	BatchNumber     string         `json:"batch_number"`
	ManufactureDate string         `json:"manufacture_date"`
	FactoryLocation string         `json:"factory_location"`
	ProductionLine  string         `json:"production_line"`
	AntiFakeCode    string         `json:"anti_fake_code"`
	Status          string         `json:"status"`
	Metadata        map[string]any `json:"metadata"`
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	ProductName  *string        `json:"product_name"`
	ProductModel *string        `json:"product_model"`
	BatchNumber  *string        `json:"batch_number"`
	Status       *string        `json:"status"`
	Metadata     map[string]any `json:"metadata"`
}

// BatchImportInput carries up to MaxBatchImportSize product registrations.
type BatchImportInput struct {
	Products []*CreateProductInput `json:"products"`
}

// MaxBatchImportSize caps one batch import request.
const MaxBatchImportSize = 1000

// BatchImportOutput reports the rows inserted by a batch import.
type BatchImportOutput struct {
	ImportedCount int               `json:"imported_count"`
	Products      []*entity.Product `json:"products"`
}

// BatchConflicts lists the keys a rejected batch collided with.
type BatchConflicts struct {
	DuplicateChipIDs []string `json:"duplicate_chip_ids"`
	DuplicateSNCodes []string `json:"duplicate_sn_codes"`
}

// ListProductsInput selects a page of the product registry.
type ListProductsInput struct {
	Page   int
	Limit  int
	Filter entity.ProductFilter
}

// ListProductsOutput returns one registry page with pagination metadata.
type ListProductsOutput struct {
	Products   []*entity.Product
	Pagination *Pagination
}

// VerifyProductInput is one verification attempt. At least one of the three
// lookup keys must be set; resolution priority is chip_id > sn_code > anti_fake_code.
type VerifyProductInput struct {
	ChipID       string         `json:"chip_id"`
	SNCode       string         `json:"sn_code"`
	AntiFakeCode string         `json:"anti_fake_code"`
	Method       string         `json:"verification_method"`
	Location     string         `json:"location"`
	DeviceInfo   map[string]any `json:"device_info"`
	Notes        string         `json:"notes"`
}

// ProductView is the redacted product shape returned to verifying customers.
type ProductView struct {
	ID                uuid.UUID  `json:"id"`
	ChipID            string     `json:"chip_id"`
	SNCode            string     `json:"sn_code"`
	ProductName       string     `json:"product_name"`
	ProductModel      string     `json:"product_model"`
	BatchNumber       string     `json:"batch_number"`
	ManufactureDate   string     `json:"manufacture_date"`
	FactoryLocation   string     `json:"factory_location"`
	AntiFakeCode      string     `json:"anti_fake_code"`
	VerificationCount int64      `json:"verification_count"`
	LastVerifiedAt    *time.Time `json:"last_verified_at"`
	Status            string     `json:"status"`
}

// VerifyProductOutput reports one verification attempt's outcome.
// Exactly one of the three cases holds:
//   - Found=false: no product matched any supplied key
//   - Found=true, Verified=false: the product exists but is not active (see Status)
//   - Found=true, Verified=true: counters updated, Product is populated
type VerifyProductOutput struct {
	Found    bool
	Verified bool
	Status   entity.ProductStatus
	Product  *ProductView
}

// ListHistoryOutput returns one page of a product's verification audit trail.
type ListHistoryOutput struct {
	Records    []*entity.VerificationRecord
	Pagination *Pagination
}

// ProductUsecase defines the interface for the product registry and the
// verification workflow.
type ProductUsecase interface {
	// Create registers one product unit on behalf of an operator.
	Create(ctx context.Context, operatorID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// BatchImport registers up to MaxBatchImportSize units atomically.
	BatchImport(ctx context.Context, operatorID uuid.UUID, input *BatchImportInput) (*BatchImportOutput, error)

	// Get returns one product and bumps its verification counter as a view side effect.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Update applies a partial update to a product's mutable fields.
	Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// List returns a filtered registry page.
	List(ctx context.Context, input *ListProductsInput) (*ListProductsOutput, error)

	// Verify runs one verification attempt and appends its audit record.
	Verify(ctx context.Context, input *VerifyProductInput) (*VerifyProductOutput, error)

	// ListVerificationHistory returns a page of a product's audit trail.
	ListVerificationHistory(ctx context.Context, productID uuid.UUID, page, limit int) (*ListHistoryOutput, error)

	// ProductQR renders the product's anti-fake code as a PNG QR image.
	ProductQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
