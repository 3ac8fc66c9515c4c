package handler

import (
	"log/slog"
	"net/http"

	"trace/internal/delivery/http/middleware"
	"trace/internal/delivery/http/response"
	domainerrors "trace/internal/domain/errors"
	"trace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product registry and verification handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles a single product registration.
func (h *ProductHandler) Create(c echo.Context) error {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授权访问")
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请求参数无效")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.Create(c.Request().Context(), operatorID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "产品创建成功")
}

// BatchImport handles a bulk product registration.
func (h *ProductHandler) BatchImport(c echo.Context) error {
	operatorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授权访问")
	}

	var input usecase.BatchImportInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请求参数无效")
	}

	output, err := h.uc.BatchImport(c.Request().Context(), operatorID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "批量导入成功")
}

// Get handles the product detail request. Viewing the detail counts as an
// inspection, so the verification counter moves.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	product, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Update handles a partial product update.
func (h *ProductHandler) Update(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授权访问")
	}

	id, err := uuid.Parse(c.QueryParam("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请求参数无效")
	}

	product, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "产品更新成功")
}

// List handles the filtered registry listing.
func (h *ProductHandler) List(c echo.Context) error {
	page, limit, err := parsePageWindow(c, usecase.DefaultPageLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ListProductsInput{
		Page:  page,
		Limit: limit,
	}
	input.Filter.ChipID = c.QueryParam("chip_id")
	input.Filter.SNCode = c.QueryParam("sn_code")
	input.Filter.BatchNumber = c.QueryParam("batch_number")
	input.Filter.Status = c.QueryParam("status")

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPagination(c, http.StatusOK, output.Products, output.Pagination, "")
}

// Verify handles one public verification attempt.
func (h *ProductHandler) Verify(c echo.Context) error {
	var input usecase.VerifyProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请求参数无效")
	}

	output, err := h.uc.Verify(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	switch {
	case !output.Found:
		// The failed attempt is already on the audit trail.
		return response.ErrorWithData(c, http.StatusNotFound,
			domainerrors.ErrVerificationFailed.ErrorCode(),
			domainerrors.ErrVerificationFailed.Message(),
			map[string]any{"verified": false})
	case !output.Verified:
		return response.ErrorWithData(c, http.StatusBadRequest,
			domainerrors.ErrProductNotVerifiable.ErrorCode(),
			domainerrors.ErrProductNotVerifiable.Message(),
			map[string]any{
				"verified": false,
				"status":   output.Status,
			})
	default:
		return response.Success(c, http.StatusOK, map[string]any{
			"verified": true,
			"product":  output.Product,
		}, "验证成功")
	}
}

// VerificationHistory handles the audit trail listing for one product.
func (h *ProductHandler) VerificationHistory(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	page, limit, err := parsePageWindow(c, usecase.DefaultHistoryPageLimit)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListVerificationHistory(c.Request().Context(), productID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithPagination(c, http.StatusOK, output.Records, output.Pagination, "")
}

// QRCode streams the product's anti-fake code as a PNG QR image.
func (h *ProductHandler) QRCode(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid product id")
	}

	png, err := h.uc.ProductQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
