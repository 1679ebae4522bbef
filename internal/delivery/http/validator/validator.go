// Package validator adapts go-playground/validator to echo's Validator
// interface, exposing per-field violations.
package validator

import (
	"fmt"
	"net/http"

	"campus/internal/delivery/http/response"
	"campus/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a configured go-playground validator.
type Validator struct {
	validate *playground.Validate
}

// New builds the validator shared by all routes.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Constraint failures surface as an
// *Error carrying per-field violations.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var validationErrs playground.ValidationErrors
		if errors.As(err, &validationErrs) {
			return newError(validationErrs)
		}

		return errors.Wrap(err, "validation failed")
	}

	return nil
}

// Error is the validation failure surfaced to the error middleware. It
// implements the AppError interface of the domain taxonomy.
type Error struct {
	detail     string
	violations []response.Violation
}

func newError(validationErrs playground.ValidationErrors) *Error {
	violations := make([]response.Violation, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		violations = append(violations, response.Violation{
			Field:      fieldErr.Field(),
			Value:      fmt.Sprintf("%v", fieldErr.Value()),
			Constraint: fieldErr.Tag(),
			Parameter:  fieldErr.Param(),
		})
	}

	detail := "invalid request"
	if len(validationErrs) > 0 {
		first := validationErrs[0]
		detail = fmt.Sprintf("field %s failed constraint %s", first.Field(), first.Tag())
	}

	return &Error{
		detail:     detail,
		violations: violations,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.detail
}

// HTTPCode returns the HTTP status code
func (e *Error) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *Error) ErrorCode() string {
	return "INVALID_ARGUMENT"
}

// Message returns the user-friendly error message
func (e *Error) Message() string {
	return "Invalid value"
}

// Details returns detailed error information
func (e *Error) Details() string {
	return e.detail
}

// Violations returns the per-field constraint failures.
func (e *Error) Violations() []response.Violation {
	return e.violations
}
