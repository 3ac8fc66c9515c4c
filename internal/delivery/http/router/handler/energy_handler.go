package handler

import (
	"log/slog"
	"net/http"

	"trace/internal/delivery/http/middleware"
	"trace/internal/delivery/http/response"
	"trace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnergyHandler holds dependencies for the daily energy tracker handlers.
type EnergyHandler struct {
	uc     usecase.EnergyUsecase
	logger *slog.Logger
}

// NewEnergyHandler is the constructor for EnergyHandler, injected by Fx.
func NewEnergyHandler(uc usecase.EnergyUsecase, logger *slog.Logger) *EnergyHandler {
	return &EnergyHandler{
		uc:     uc,
		logger: logger,
	}
}

// RecordToday handles the daily energy report request.
func (h *EnergyHandler) RecordToday(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授权访问")
	}

	var input usecase.RecordEnergyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "请求参数无效")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.RecordToday(c.Request().Context(), userID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	statusCode := http.StatusCreated
	message := "能量记录已创建"
	if output.Action == usecase.EnergyActionUpdated {
		statusCode = http.StatusOK
		message = "能量记录已更新"
	}

	return response.Success(c, statusCode, map[string]any{
		"record": output.Record,
		"action": output.Action,
	}, message)
}

// ListToday handles the request for today's energy records.
func (h *EnergyHandler) ListToday(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "未授权访问")
	}

	output, err := h.uc.ListToday(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"records": output.Records,
		"count":   output.Count,
		"today":   output.Today,
	}, "")
}
