// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/gantt-dashboard/internal/adapters/http/web"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	webHandler *web.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Server-rendered dashboard.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NoStore())

		r.Get("/", webHandler.Dashboard)
		r.Post("/ui/projects", webHandler.CreateProject)
		r.Post("/ui/select", webHandler.SelectProject)
		r.Post("/ui/delete", webHandler.DeleteProject)
		r.Post("/ui/tasks", webHandler.AddTask)
		r.Post("/ui/stages", webHandler.AddStage)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Project collection.
		r.Get("/projects", dashboardHandler.ListProjects)
		r.Post("/projects", dashboardHandler.CreateProject)
		r.Get("/projects/{name}", dashboardHandler.GetProject)
		r.Delete("/projects/{name}", dashboardHandler.DeleteProject)
		r.Get("/projects/{name}/timeline", dashboardHandler.ProjectTimeline)

		// Session selection.
		r.Get("/session", dashboardHandler.GetSession)
		r.Put("/session", dashboardHandler.SelectProject)
		r.Delete("/session/project", dashboardHandler.DeleteCurrentProject)

		// Operations on the selected project.
		r.Post("/tasks", dashboardHandler.AddTask)
		r.Post("/stages", dashboardHandler.AddStage)
		r.Delete("/stages/{name}", dashboardHandler.RemoveStage)
		r.Get("/timeline", dashboardHandler.Timeline)
	})

	return r
}
