package repository

import (
	"context"
	"errors"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContentNotFound is returned when no post matches the lookup.
var ErrContentNotFound = errors.New("content post not found")

// ContentFilter narrows a content listing. Search matches title or body,
// case-insensitive; Category is exact.
type ContentFilter struct {
	Category string
	Search   string
}

// ContentRepository defines read access to the content feed plus the view counter.
type ContentRepository interface {
	// List retrieves a page of posts ordered by created_at descending,
	// together with the total number of matching rows.
	List(ctx context.Context, filter ContentFilter, offset, limit int) ([]*entity.ContentPost, int64, error)

	// FindByID retrieves a single post.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error)

	// IncrementViewCount bumps a post's view counter by one.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// CategoryCounts returns the per-category post frequency, sorted by category name ascending.
	CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error)
}
