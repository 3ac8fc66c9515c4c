package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trace/internal/domain/service"
	mockSvc "trace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/energy/today", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(tokenSvc).Authenticate(next)(c)
	require.NoError(t, err)

	return rec, c, nextCalled
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateAccessToken("valid_token").
		Return(&service.TokenClaims{UserID: userID, Type: "access"}, nil)

	rec, c, nextCalled := runAuthenticate(t, tokenSvc, "Bearer valid_token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)

	resolved, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, resolved)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, c, nextCalled := runAuthenticate(t, tokenSvc, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	_, ok := GetUserID(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_NotBearerScheme(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, _, nextCalled := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	tokenSvc.EXPECT().
		ValidateAccessToken("expired_token").
		Return(nil, errors.New("token is expired"))

	rec, _, nextCalled := runAuthenticate(t, tokenSvc, "Bearer expired_token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
