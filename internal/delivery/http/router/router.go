// Package router contains routing setup for the HTTP delivery. Each binary
// provides only its own handlers; absent ones leave their routes
// unregistered.
package router

import (
	"campus/internal/delivery/http/middleware"
	"campus/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CodelistHandler     *handler.CodelistHandler     `optional:"true"`
	PersonHandler       *handler.PersonHandler       `optional:"true"`
	StudentHandler      *handler.StudentHandler      `optional:"true"`
	StudyProgramHandler *handler.StudyProgramHandler `optional:"true"`
	GatewayAuth         *middleware.GatewayAuthMiddleware
	RequestID           *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestID.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Internal facades consumed by sibling services. Gateway identity
	// headers are stripped at the perimeter, so these skip Authenticate.
	internal := e.Group("/internal/v1")
	if h := r.params.CodelistHandler; h != nil {
		internal.POST("/codelist/lookup", h.Lookup)
	}
	if h := r.params.PersonHandler; h != nil {
		internal.GET("/persons/:personId/simple-profile", h.GetSimpleProfile)
	}
	if h := r.params.StudentHandler; h != nil {
		internal.GET("/persons/:personId/student-ids", h.StudentIDs)
		internal.GET("/students/:studentId/person-id", h.PersonID)
	}
	if h := r.params.StudyProgramHandler; h != nil {
		internal.GET("/programs/:programId/plans/:planId", h.ProgramAndField)
	}

	// Public API behind the gateway, identity headers required.
	api := e.Group("/api/v1")
	api.Use(r.params.GatewayAuth.Authenticate)
	if h := r.params.PersonHandler; h != nil {
		api.GET("/persons/:personId/profile", h.GetProfile)
		api.GET("/persons/:personId/addresses", h.GetAddresses)
		api.GET("/persons/:personId/banking", h.GetBanking)
		api.GET("/persons/:personId/education", h.GetEducation)
	}
	if h := r.params.StudentHandler; h != nil {
		api.GET("/students/:studentId/profile", h.GetProfile)
	}
	if h := r.params.StudyProgramHandler; h != nil {
		api.GET("/study-programs/:programId", h.GetStudyProgram)
	}
}
