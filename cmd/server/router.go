package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/taskwell/taskwell-api/internal/api"
	apimiddleware "github.com/taskwell/taskwell-api/internal/api/middleware"
)

// setupRouter configures the application router with all routes and
// middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apimiddleware.Trace)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(app.db, app.userStore, app.jwtService, app.hasher)
	taskHandler := api.NewTaskHandler(app.taskStore)
	healthHandler := api.NewHealthHandler(app.healthChecker)
	metaHandler := api.NewMetaHandler(app.config.Server.DevMode)
	authGuard := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/", metaHandler.Root)
	r.Get("/health", healthHandler.Check)
	if app.config.Server.DevMode {
		r.Get("/docs", metaHandler.Docs)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(authGuard.Authenticate)
			r.Post("/", taskHandler.Create)
			r.Get("/", taskHandler.List)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})
	})

	return r
}
