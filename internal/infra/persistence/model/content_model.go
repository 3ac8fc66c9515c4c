package model

import (
	"time"

	"github.com/google/uuid"
)

// ContentPostModel mirrors the 'content_posts' table.
type ContentPostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	Category  string    `gorm:"type:varchar(100);index"`
	ViewCount int64     `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContentPostModel) TableName() string {
	return "content_posts"
}
