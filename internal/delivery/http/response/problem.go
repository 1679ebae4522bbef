package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Problem is the error payload returned by all services.
type Problem struct {
	Status     int         `json:"status"`
	Title      string      `json:"title"`
	Detail     string      `json:"detail,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
}

// Violation describes one failed validation constraint.
type Violation struct {
	Field      string `json:"field"`
	Value      string `json:"value,omitempty"`
	Constraint string `json:"constraint"`
	Parameter  string `json:"parameter,omitempty"`
}

// Error writes a problem payload.
func Error(c echo.Context, status int, title, detail string) error {
	return c.JSON(status, Problem{
		Status: status,
		Title:  title,
		Detail: detail,
	})
}

// ValidationError writes a 400 problem payload with per-field violations.
func ValidationError(c echo.Context, detail string, violations []Violation) error {
	return c.JSON(http.StatusBadRequest, Problem{
		Status:     http.StatusBadRequest,
		Title:      "INVALID_ARGUMENT",
		Detail:     detail,
		Violations: violations,
	})
}
