package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"gorm.io/gorm"

	"hckonnect/hubgate/internal/api"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/middleware"
)

// RegisterRoutes builds the chi router with the full middleware chain and
// every hubgate endpoint.
func RegisterRoutes(hubDB *gorm.DB, upSince time.Time) (http.Handler, *api.Dependencies) {
	r := chi.NewRouter()

	deps, err := api.InitDependencies(hubDB)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.SessionMiddleware(deps.Services.Sessions))
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with session, rate limit, and metrics middleware")

	r.Get("/healthCheck", api.HealthCheckHandler(deps, hubDB, upSince))

	RegisterAPIRoutes(r, deps)

	return r, deps
}
