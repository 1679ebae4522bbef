package handler

import (
	"strconv"
	"strings"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/service"
	"campus/internal/errors"

	"github.com/labstack/echo/v4"
)

// parseIDParam parses a positive numeric path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.Wrapf(domainerrors.ErrInvalidArgument, "invalid %s", name)
	}

	return id, nil
}

// language reads the lang query parameter, defaulting to Czech for absent
// or malformed tags.
func language(c echo.Context) string {
	lang := c.QueryParam("lang")
	if len(lang) != 2 {
		return entity.LanguageCzech
	}

	return strings.ToLower(lang)
}

// requireStaffOrStudentOwner allows staff roles, or a student principal
// reading its own student record.
func requireStaffOrStudentOwner(c echo.Context, studentID int64) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "missing principal")
	}
	if principal.IsStaff() {
		return nil
	}
	if principal.HasRole(entity.RoleStudent) &&
		principal.StudentID == strconv.FormatInt(studentID, 10) {
		return nil
	}

	return errors.Wrap(domainerrors.ErrAccessDenied, "not the record owner")
}

// requireStaffOrPersonOwner allows staff roles, or a student principal
// whose student record resolves to the requested person. The resolution
// goes through the student service.
func requireStaffOrPersonOwner(c echo.Context, students service.StudentGateway, personID int64) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return errors.Wrap(domainerrors.ErrUnauthenticated, "missing principal")
	}
	if principal.IsStaff() {
		return nil
	}
	if !principal.HasRole(entity.RoleStudent) || principal.StudentID == "" {
		return errors.Wrap(domainerrors.ErrAccessDenied, "no read access")
	}

	studentID, err := strconv.ParseInt(principal.StudentID, 10, 64)
	if err != nil {
		return errors.Wrap(domainerrors.ErrAccessDenied, "malformed student id")
	}

	ownerID, err := students.PersonID(c.Request().Context(), studentID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrStudentNotFound) {
			return errors.Wrap(domainerrors.ErrAccessDenied, "unknown student")
		}

		return err
	}
	if ownerID != personID {
		return errors.Wrap(domainerrors.ErrAccessDenied, "not the record owner")
	}

	return nil
}
