package handler

import (
	"log/slog"
	"net/http"

	"campus/internal/domain/service"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PersonHandler serves the user service's profile endpoints.
type PersonHandler struct {
	uc       usecase.PersonUsecase
	students service.StudentGateway
	logger   *slog.Logger
}

// NewPersonHandler is the constructor for PersonHandler, injected by Fx.
func NewPersonHandler(uc usecase.PersonUsecase, students service.StudentGateway, logger *slog.Logger) *PersonHandler {
	return &PersonHandler{
		uc:       uc,
		students: students,
		logger:   logger,
	}
}

// GetProfile handles the enriched profile request.
func (h *PersonHandler) GetProfile(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	if err := requireStaffOrPersonOwner(c, h.students, personID); err != nil {
		return err
	}

	profile, err := h.uc.GetProfile(c.Request().Context(), personID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// GetAddresses handles the enriched address request.
func (h *PersonHandler) GetAddresses(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	if err := requireStaffOrPersonOwner(c, h.students, personID); err != nil {
		return err
	}

	addresses, err := h.uc.GetAddresses(c.Request().Context(), personID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, addresses)
}

// GetBanking handles the enriched banking request.
func (h *PersonHandler) GetBanking(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	if err := requireStaffOrPersonOwner(c, h.students, personID); err != nil {
		return err
	}

	banking, err := h.uc.GetBanking(c.Request().Context(), personID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, banking)
}

// GetEducation handles the enriched education request.
func (h *PersonHandler) GetEducation(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}
	if err := requireStaffOrPersonOwner(c, h.students, personID); err != nil {
		return err
	}

	education, err := h.uc.GetEducation(c.Request().Context(), personID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, education)
}

// GetSimpleProfile serves the internal facade consumed by the student
// service. It bypasses the gateway identity check, the route is reachable
// only inside the perimeter.
func (h *PersonHandler) GetSimpleProfile(c echo.Context) error {
	personID, err := parseIDParam(c, "personId")
	if err != nil {
		return err
	}

	profile, err := h.uc.GetSimpleProfile(c.Request().Context(), personID, language(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, profile)
}
