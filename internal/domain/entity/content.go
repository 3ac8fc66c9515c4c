package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContentPost is one entry of the public content feed. Posts are seeded
// outside this service; the only mutation performed here is the view counter.
type ContentPost struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Category  string // Empty when the post is uncategorized.
	ViewCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryCount is one row of the category frequency table.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}
