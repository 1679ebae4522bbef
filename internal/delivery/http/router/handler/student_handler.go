package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler serves the student service's endpoints.
type StudentHandler struct {
	uc     usecase.StudentUsecase
	logger *slog.Logger
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile handles the aggregated student profile request.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return err
	}
	if err := requireStaffOrStudentOwner(c, studentID); err != nil {
		return err
	}

	profile, err := h.uc.GetStudentProfile(c.Request().Context(), studentID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// StudentIDs serves the internal person-to-students lookup.
func (h *StudentHandler) StudentIDs(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	ids, err := h.uc.StudentIDs(c.Request().Context(), personID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string][]int64{"studentIds": ids})
}

// PersonID serves the internal student-to-person lookup.
func (h *StudentHandler) PersonID(c echo.Context) error {
	studentID, err := parseIDParam(c, "studentId")
	if err != nil {
		return err
	}

	personID, err := h.uc.PersonID(c.Request().Context(), studentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]int64{"personId": personID})
}
