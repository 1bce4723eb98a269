// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commitly/web/internal/adapters/http/handlers"
	"github.com/commitly/web/internal/adapters/http/middleware"
)

// RouterHandlers bundles the handlers the router wires up.
type RouterHandlers struct {
	Auth         *handlers.AuthHandler
	Activity     *handlers.ActivityHandler
	Circle       *handlers.CircleHandler
	Dashboard    *handlers.DashboardHandler
	Rival        *handlers.RivalHandler
	Notification *handlers.NotificationHandler
	Health       *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Global middleware is applied in the order given; sessionMW resolves the
// session cookie into an identity, and everything under /api/pages and
// /api/actions additionally requires one.
func NewRouter(
	h RouterHandlers,
	sessionMW func(http.Handler) http.Handler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api prefix, no session needed).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api", func(r chi.Router) {
		r.Use(sessionMW)

		// Session lifecycle.
		r.Post("/session", h.Auth.SignIn)
		r.Delete("/session", h.Auth.SignOut)

		// Session-gated page and action routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireIdentity())

			r.Route("/pages", func(r chi.Router) {
				r.Get("/activity", h.Activity.ActivityPage)
				r.Get("/circles", h.Circle.CirclesPage)
				r.Get("/circles/{id}", h.Circle.CircleDetailPage)
				r.Get("/dashboard", h.Dashboard.DashboardPage)
				r.Get("/rivals", h.Rival.RivalsPage)
				r.Get("/notifications", h.Notification.NotificationsPage)
			})

			r.Route("/actions", func(r chi.Router) {
				// Circle actions.
				r.Post("/circles", h.Circle.CreateCircle)
				r.Post("/circles/join", h.Circle.JoinCircle)
				r.Post("/circles/{id}/leave", h.Circle.LeaveCircle)
				r.Delete("/circles/{id}", h.Circle.DeleteCircle)

				// Rival actions.
				r.Post("/rivals", h.Rival.AddRival)
				r.Delete("/rivals/{id}", h.Rival.RemoveRival)

				// Notification actions.
				r.Post("/notifications", h.Notification.CreateSetting)
				r.Put("/notifications/{id}", h.Notification.UpdateSetting)
				r.Delete("/notifications/{id}", h.Notification.DeleteSetting)
				r.Post("/notifications/slack", h.Notification.RegisterSlack)
				r.Put("/notifications/slack", h.Notification.SetSlackEnabled)
				r.Delete("/notifications/slack", h.Notification.RemoveSlack)
			})
		})
	})

	return r
}
