package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trace/internal/delivery/http/response"
	"trace/internal/domain/entity"
	mockUC "trace/internal/mocks/usecase"
	"trace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func runVerify(t *testing.T, uc *mockUC.MockProductUsecase, payload string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/products/verify", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, NewProductHandler(uc, logger).Verify(c))

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestProductHandler_Verify_Success(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)

	uc.EXPECT().
		Verify(mock.Anything, mock.AnythingOfType("*usecase.VerifyProductInput")).
		Return(&usecase.VerifyProductOutput{
			Found:    true,
			Verified: true,
			Status:   entity.ProductStatusActive,
			Product:  &usecase.ProductView{ID: uuid.New(), ChipID: "CHIP-001"},
		}, nil)

	rec, body := runVerify(t, uc, `{"chip_id":"CHIP-001"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, data["verified"])
	assert.NotNil(t, data["product"])
}

func TestProductHandler_Verify_NotFoundCarriesVerifiedFalse(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)

	uc.EXPECT().
		Verify(mock.Anything, mock.AnythingOfType("*usecase.VerifyProductInput")).
		Return(&usecase.VerifyProductOutput{Found: false}, nil)

	rec, body := runVerify(t, uc, `{"anti_fake_code":"AFBOGUS"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VERIFICATION_FAILED", body.Error.Code)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["verified"])
}

func TestProductHandler_Verify_InactiveCarriesStatus(t *testing.T) {
	uc := mockUC.NewMockProductUsecase(t)

	uc.EXPECT().
		Verify(mock.Anything, mock.AnythingOfType("*usecase.VerifyProductInput")).
		Return(&usecase.VerifyProductOutput{
			Found:  true,
			Status: entity.ProductStatusSuspended,
		}, nil)

	rec, body := runVerify(t, uc, `{"sn_code":"SN-001"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "PRODUCT_NOT_VERIFIABLE", body.Error.Code)
	data, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, data["verified"])
	assert.Equal(t, string(entity.ProductStatusSuspended), data["status"])
}
