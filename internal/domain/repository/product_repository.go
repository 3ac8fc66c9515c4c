package repository

import (
	"context"
	"errors"
	"time"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicateProductKey is returned when an insert collides with an existing
// chip_id, sn_code or anti_fake_code unique constraint.
var ErrDuplicateProductKey = errors.New("duplicate product key")

// ProductKey is the unique key pair of an existing product, used to report
// batch import collisions.
type ProductKey struct {
	ChipID string
	SNCode string
}

// ProductRepository defines operations for product registry persistence.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// CreateBatch persists all given products in one statement.
	CreateBatch(ctx context.Context, products []*entity.Product) error

	// FindByID retrieves a product by its primary key.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByChipID retrieves a product by chip identifier.
	FindByChipID(ctx context.Context, chipID string) (*entity.Product, error)

	// FindBySNCode retrieves a product by serial number.
	FindBySNCode(ctx context.Context, snCode string) (*entity.Product, error)

	// FindByAntiFakeCode retrieves a product by anti-counterfeit code.
	FindByAntiFakeCode(ctx context.Context, antiFakeCode string) (*entity.Product, error)

	// FindKeysIn returns the key pairs of existing products whose chip_id is in
	// chipIDs or whose sn_code is in snCodes. Used for duplicate pre-checks.
	FindKeysIn(ctx context.Context, chipIDs, snCodes []string) ([]ProductKey, error)

	// Update applies a partial update and returns the stored product.
	Update(ctx context.Context, id uuid.UUID, update *entity.ProductUpdate) (*entity.Product, error)

	// List retrieves a page of products ordered by created_at descending,
	// together with the total number of matching rows.
	List(ctx context.Context, filter entity.ProductFilter, offset, limit int) ([]*entity.Product, int64, error)

	// IncrementVerificationCount bumps the verification counter without
	// touching last_verified_at. Used for the detail-view side effect.
	IncrementVerificationCount(ctx context.Context, id uuid.UUID) error

	// RecordVerification bumps the verification counter, sets last_verified_at
	// and returns the updated product.
	RecordVerification(ctx context.Context, id uuid.UUID, verifiedAt time.Time) (*entity.Product, error)
}
