package repository

import (
	"context"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationRepository defines operations for the append-only verification audit trail.
type VerificationRepository interface {
	// Create appends one verification attempt record.
	Create(ctx context.Context, record *entity.VerificationRecord) error

	// ListByProduct retrieves a page of a product's history ordered by
	// created_at descending, together with the total number of rows.
	ListByProduct(ctx context.Context, productID uuid.UUID, offset, limit int) ([]*entity.VerificationRecord, int64, error)
}
