package usecase

import (
	"context"
	"log/slog"

	"trace/internal/domain/entity"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Pagination bounds shared by every windowed listing.
const (
	DefaultPageLimit        = 10
	DefaultHistoryPageLimit = 20
	MaxPageLimit            = 100
)

// validatePageWindow rejects out-of-range pagination parameters.
func validatePageWindow(page, limit int) error {
	if page < 1 || limit < 1 || limit > MaxPageLimit {
		return domainerrors.ErrInvalidPagination
	}

	return nil
}

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(contentRepo repository.ContentRepository, logger *slog.Logger) ContentUsecase {
	return &contentService{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

// List returns a feed page, optionally filtered by category and search term.
func (srv *contentService) List(ctx context.Context, input *ListContentInput) (*ListContentOutput, error) {
	if err := validatePageWindow(input.Page, input.Limit); err != nil {
		return nil, err
	}

	filter := repository.ContentFilter{
		Category: input.Category,
		Search:   input.Search,
	}
	offset := (input.Page - 1) * input.Limit

	posts, total, err := srv.contentRepo.List(ctx, filter, offset, input.Limit)
	if err != nil {
		srv.logger.Error("Failed to list content posts", "error", err)

		return nil, errors.Wrap(err, "failed to list content posts")
	}

	return &ListContentOutput{
		Posts:      posts,
		Pagination: NewPagination(input.Page, input.Limit, total),
	}, nil
}

// Get returns one post and bumps its view counter. The bump is a best-effort
// side effect of a successful read: a counter failure is logged, never
// surfaced to the reader.
func (srv *contentService) Get(ctx context.Context, id uuid.UUID) (*entity.ContentPost, error) {
	post, err := srv.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content post")
	}

	if err := srv.contentRepo.IncrementViewCount(ctx, id); err != nil {
		srv.logger.Warn("Failed to increment view count", "error", err, "postID", id)
	} else {
		post.ViewCount++
	}

	return post, nil
}

// CategoryCounts returns the category frequency table, sorted by name.
func (srv *contentService) CategoryCounts(ctx context.Context) ([]*entity.CategoryCount, error) {
	counts, err := srv.contentRepo.CategoryCounts(ctx)
	if err != nil {
		srv.logger.Error("Failed to count content categories", "error", err)

		return nil, errors.Wrap(err, "failed to count content categories")
	}

	return counts, nil
}
