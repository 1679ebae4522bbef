package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudyProgramHandler serves the study-plan service's endpoints.
type StudyProgramHandler struct {
	uc     usecase.StudyProgramUsecase
	logger *slog.Logger
}

// NewStudyProgramHandler is the constructor for StudyProgramHandler, injected by Fx.
func NewStudyProgramHandler(uc usecase.StudyProgramUsecase, logger *slog.Logger) *StudyProgramHandler {
	return &StudyProgramHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetStudyProgram handles the enriched study-program request.
func (h *StudyProgramHandler) GetStudyProgram(c echo.Context) error {
	programID, err := parseIDParam(c, "programId")
	if err != nil {
		return err
	}

	program, err := h.uc.GetStudyProgram(c.Request().Context(), programID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, program)
}

// ProgramAndField serves the internal projection consumed by the student
// service.
func (h *StudyProgramHandler) ProgramAndField(c echo.Context) error {
	programID, err := parseIDParam(c, "programId")
	if err != nil {
		return err
	}
	planID, err := parseIDParam(c, "planId")
	if err != nil {
		return err
	}

	projection, err := h.uc.ProgramAndField(c.Request().Context(), programID, planID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, projection)
}
