package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "trace/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestParsePageWindow_Defaults(t *testing.T) {
	c := newTestContext(t, "/content")

	page, limit, err := parsePageWindow(c, 10)

	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestParsePageWindow_ExplicitValues(t *testing.T) {
	c := newTestContext(t, "/content?page=3&limit=50")

	page, limit, err := parsePageWindow(c, 10)

	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
}

func TestParsePageWindow_NonNumericInput(t *testing.T) {
	for _, target := range []string{
		"/content?page=abc",
		"/content?limit=ten",
		"/content?page=1.5",
	} {
		c := newTestContext(t, target)

		_, _, err := parsePageWindow(c, 10)

		assert.Error(t, err, target)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPagination), target)
	}
}

func TestParsePageWindow_OutOfRangePassesThrough(t *testing.T) {
	// Range validation belongs to the use case; the parser only rejects
	// non-numeric input.
	c := newTestContext(t, "/content?page=0&limit=9999")

	page, limit, err := parsePageWindow(c, 10)

	require.NoError(t, err)
	assert.Equal(t, 0, page)
	assert.Equal(t, 9999, limit)
}
