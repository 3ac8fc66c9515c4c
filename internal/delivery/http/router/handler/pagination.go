package handler

import (
	"strconv"

	domainerrors "trace/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// parsePageWindow reads the page/limit query parameters, applying defaults for
// absent values. Non-numeric input is rejected here; range checks happen in
// the use case.
func parsePageWindow(c echo.Context, defaultLimit int) (page int, limit int, err error) {
	page, err = parseIntParam(c.QueryParam("page"), 1)
	if err != nil {
		return 0, 0, domainerrors.ErrInvalidPagination
	}

	limit, err = parseIntParam(c.QueryParam("limit"), defaultLimit)
	if err != nil {
		return 0, 0, domainerrors.ErrInvalidPagination
	}

	return page, limit, nil
}

func parseIntParam(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
