package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Identity headers asserted by the api gateway. The gateway strips these
// from inbound traffic, so inside the perimeter they are trusted as-is.
const (
	HeaderStudentID = "X-Student-Id"
	HeaderTeacherID = "X-Teacher-Id"
	HeaderEmail     = "X-Email"
	HeaderRoles     = "X-Roles"
)

// GatewayAuthMiddleware builds the request principal from gateway headers.
type GatewayAuthMiddleware struct {
	logger *slog.Logger
}

// NewGatewayAuthMiddleware is the constructor for GatewayAuthMiddleware.
func NewGatewayAuthMiddleware(logger *slog.Logger) *GatewayAuthMiddleware {
	return &GatewayAuthMiddleware{logger: logger}
}

// Authenticate extracts the identity headers into a Principal. Requests
// without any subject identifier or without roles are rejected.
func (m *GatewayAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header
		principal := entity.Principal{
			StudentID: strings.TrimSpace(header.Get(HeaderStudentID)),
			TeacherID: strings.TrimSpace(header.Get(HeaderTeacherID)),
			Email:     strings.TrimSpace(header.Get(HeaderEmail)),
			Roles:     parseRoles(header.Get(HeaderRoles)),
		}

		m.logger.Debug("gateway identity",
			"subject", principal.SubjectName(),
			"roles", principal.Roles,
			"path", c.Request().URL.Path,
		)

		if principal.StudentID == "" && principal.TeacherID == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing identity headers")
		}
		if len(principal.Roles) == 0 {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing roles")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireRole rejects requests whose principal lacks the given role. It
// must run after Authenticate.
func (m *GatewayAuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := deliverycontext.GetPrincipal(c)
			if !ok {
				return response.Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", "Missing identity headers")
			}
			if !principal.HasRole(role) {
				return response.Error(c, http.StatusForbidden, "ACCESS_DENIED", "Access denied")
			}

			return next(c)
		}
	}
}

// parseRoles splits the comma-separated roles header, trimming whitespace
// and dropping empty entries.
func parseRoles(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	roles := make([]string, 0, len(parts))
	for _, part := range parts {
		role := strings.TrimSpace(part)
		if role == "" {
			continue
		}
		roles = append(roles, role)
	}

	return roles
}
