package usecase

import (
	"context"

	"trace/internal/domain/entity"

	"github.com/google/uuid"
)

// ListContentInput selects a page of the content feed.
type ListContentInput struct {
	Page     int
	Limit    int
	Category string
	Search   string
}

// ListContentOutput returns one feed page with pagination metadata.
type ListContentOutput struct {
	Posts      []*entity.ContentPost
	Pagination *Pagination
}

// ContentUsecase defines read access to the content feed.
type ContentUsecase interface {
	// List returns a feed page, optionally filtered by category and a
	// case-insensitive search over title and body.
	List(ctx context.Context, input *ListContentInput) (*ListContentOutput, error)

	// Get returns one post and bumps its view counter.
	Get(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error)

	// CategoryCounts returns the category frequency table, sorted by name.
	CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error)
}
