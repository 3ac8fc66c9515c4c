package postgres

import (
	"context"

	"trace/internal/domain/entity"
	"trace/internal/domain/repository"
	"trace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// contentRepository implements the repository.ContentRepository interface using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{
		db: db,
	}
}

// List retrieves a page of posts ordered by created_at descending, with the total row count.
func (repo *contentRepository) List(ctx context.Context, filter repository.ContentFilter, offset, limit int) ([]*entity.ContentPost, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ContentPostModel{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count content posts")
	}

	var postModels []*model.ContentPostModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&postModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list content posts")
	}

	posts := make([]*entity.ContentPost, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toContentDomain(postM))
	}

	return posts, total, nil
}

// FindByID retrieves a single post.
func (repo *contentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error) {
	var postM model.ContentPostModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content post by ID")
	}

	return toContentDomain(&postM), nil
}

// IncrementViewCount bumps a post's view counter by one.
func (repo *contentRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContentPostModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment view count")
	}

	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

// CategoryCounts returns the per-category post frequency, sorted by category name ascending.
func (repo *contentRepository) CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error) {
	var counts []*entity.CategoryCount

	if err := repo.db.WithContext(ctx).
		Model(&model.ContentPostModel{}).
		Select("category AS name, COUNT(*) AS count").
		Where("category <> ''").
		Group("category").
		Order("category ASC").
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count content categories")
	}

	return counts, nil
}

// --- Mapper Functions ---

func toContentDomain(data *model.ContentPostModel) *entity.ContentPost {
	if data == nil {
		return nil
	}

	return &entity.ContentPost{
		ID:        data.ID,
		Title:     data.Title,
		Content:   data.Content,
		Category:  data.Category,
		ViewCount: data.ViewCount,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
