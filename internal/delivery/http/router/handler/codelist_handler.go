package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/domain/entity"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CodelistHandler serves the batched reference-data lookup facade.
type CodelistHandler struct {
	uc     usecase.CodelistUsecase
	logger *slog.Logger
}

// NewCodelistHandler is the constructor for CodelistHandler, injected by Fx.
func NewCodelistHandler(uc usecase.CodelistUsecase, logger *slog.Logger) *CodelistHandler {
	return &CodelistHandler{
		uc:     uc,
		logger: logger,
	}
}

// Lookup handles the batched lookup request.
func (h *CodelistHandler) Lookup(c echo.Context) error {
	var req entity.LookupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed lookup request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.uc.Lookup(c.Request().Context(), req)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, result)
}
