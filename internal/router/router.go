// Package router wires middleware and route handlers into the chi mux.
// It lives outside main so contract tests can build the exact route
// table the server runs.
package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/roster/roster/internal/config"
	"github.com/roster/roster/internal/handler"
	"github.com/roster/roster/internal/middleware"
)

// Deps bundles everything the route table needs.
type Deps struct {
	Handler       *handler.Handler
	HealthHandler *handler.HealthHandler
	UserHandler   *handler.UserHandler
	Config        *config.Config
	Logger        *slog.Logger
}

// New builds the full router: global middleware, health probes, the
// root endpoint, and the user CRUD routes.
func New(d Deps) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recoverer(d.Logger))
	r.Use(middleware.BodyLimit(d.Config.MaxRequestBodySize))

	if origins := d.Config.GetCORSAllowedOrigins(); len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
			ExposedHeaders: []string{middleware.RequestIDHeader},
			MaxAge:         86400,
		}))
	}

	// Health endpoints
	r.Get("/healthz", d.HealthHandler.Healthz)
	r.Get("/readyz", d.HealthHandler.Readyz)

	// Root info endpoint
	r.Get("/", d.Handler.Welcome)

	// User CRUD
	r.Route("/users", func(r chi.Router) {
		r.Get("/", d.UserHandler.List)
		r.Post("/", d.UserHandler.Create)
		r.Get("/{id}", d.UserHandler.Get)
		r.Put("/{id}", d.UserHandler.Update)
		r.Delete("/{id}", d.UserHandler.Delete)
	})

	// 404 and 405 handlers
	r.NotFound(d.Handler.NotFound)
	r.MethodNotAllowed(d.Handler.MethodNotAllowed)

	return r
}
