package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/delivery/http/response"
	"campus/internal/delivery/http/validator"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.Problem) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/persons/42/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.HandleHTTPError(err, c)

	var problem response.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))

	return rec, problem
}

func TestErrorMiddleware_MapsTaxonomyToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{
			name:       "person not found",
			err:        domainerrors.ErrPersonNotFound,
			wantStatus: http.StatusNotFound,
			wantTitle:  "PERSON_NOT_FOUND",
		},
		{
			name:       "upstream unavailable",
			err:        domainerrors.ErrUpstreamUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "UPSTREAM_UNAVAILABLE",
		},
		{
			name:       "deadline exceeded",
			err:        domainerrors.ErrDeadlineExceeded,
			wantStatus: http.StatusGatewayTimeout,
			wantTitle:  "DEADLINE_EXCEEDED",
		},
		{
			name:       "call not permitted",
			err:        domainerrors.ErrCallNotPermitted,
			wantStatus: http.StatusServiceUnavailable,
			wantTitle:  "CALL_NOT_PERMITTED",
		},
		{
			name:       "access denied",
			err:        domainerrors.ErrAccessDenied,
			wantStatus: http.StatusForbidden,
			wantTitle:  "ACCESS_DENIED",
		},
		{
			name:       "unauthenticated",
			err:        domainerrors.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantTitle:  "UNAUTHENTICATED",
		},
		{
			name:       "interrupted fetch",
			err:        domainerrors.ErrFetchInterrupted,
			wantStatus: http.StatusInternalServerError,
			wantTitle:  "FETCH_INTERRUPTED",
		},
		{
			name:       "wrapped taxonomy error keeps its mapping",
			err:        errors.Wrap(domainerrors.ErrStudentNotFound, "student not found"),
			wantStatus: http.StatusNotFound,
			wantTitle:  "STUDENT_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, problem := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, problem.Status)
			assert.Equal(t, tt.wantTitle, problem.Title)
		})
	}
}

func TestErrorMiddleware_UnclassifiedErrorHidesInternals(t *testing.T) {
	rec, problem := handleError(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", problem.Title)
	assert.NotContains(t, problem.Detail, "connection refused")
}

func TestErrorMiddleware_FetchErrorMapsToInternal(t *testing.T) {
	fetchErr := domainerrors.NewFetchError("student ids", "42", errors.New("boom"))

	rec, problem := handleError(t, fetchErr)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, problem.Detail, "boom")
}

func TestErrorMiddleware_ValidationErrorCarriesViolations(t *testing.T) {
	type lookupBody struct {
		Language string `validate:"required,len=2"`
	}

	err := validator.New().Validate(&lookupBody{Language: "cze"})
	require.Error(t, err)

	rec, problem := handleError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, problem.Violations, 1)
	assert.Equal(t, "Language", problem.Violations[0].Field)
	assert.Equal(t, "len", problem.Violations[0].Constraint)
	assert.Equal(t, "2", problem.Violations[0].Parameter)
}
