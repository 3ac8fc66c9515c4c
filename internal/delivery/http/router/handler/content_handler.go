package handler

import (
	"log/slog"
	"net/http"

	"trace/internal/delivery/http/response"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for the content feed handlers.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles the content feed listing request.
func (h *ContentHandler) List(c echo.Context) error {
	page, limit, err := parsePageWindow(c, usecase.DefaultPageLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.List(c.Request().Context(), &usecase.ListContentInput{
		Page:     page,
		Limit:    limit,
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPagination(c, http.StatusOK, output.Posts, output.Pagination, "")
}

// Get handles the single post request; reading a post bumps its view counter.
func (h *ContentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid content id")
	}

	post, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, post, "")
}

// Categories handles the category frequency request.
func (h *ContentHandler) Categories(c echo.Context) error {
	counts, err := h.uc.CategoryCounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts, "")
}
