package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cosan-app/cosan-api/internal/api"
	apiMiddleware "github.com/cosan-app/cosan-api/internal/api/middleware"
	"github.com/cosan-app/cosan-api/internal/platform/metrics"
)

// setupRouter configures the application router with all routes and
// middleware. Logging wraps auth wraps handlers, so a request rejected by
// the auth gate is still logged exactly once.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(metrics.Instrument)

	userHandler := api.NewUserHandler(app.userService)
	wordHandler := api.NewWordHandler(app.wordService)
	userWordHandler := api.NewUserWordHandler(app.userWordService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenValidator)

	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints: account creation and credential login
		// authenticate by payload, not by bearer token.
		r.Post("/users", userHandler.Create)
		r.Post("/users/login", userHandler.Login)

		// Protected endpoints.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/{userID}", userHandler.Get)
			r.Put("/users", userHandler.Update)
			r.Delete("/users/{userID}", userHandler.Delete)

			r.Post("/words", wordHandler.Create)
			r.Get("/words/{wordID}", wordHandler.Get)
			r.Put("/words", wordHandler.Update)
			r.Delete("/words/{wordID}", wordHandler.Delete)

			r.Post("/user-words", userWordHandler.Create)
			r.Get("/user-words/user/{userID}/word/{wordID}", userWordHandler.GetByUserAndWord)
			r.Get("/user-words/user/{userID}", userWordHandler.ListByUser)
			r.Get("/user-words/word/{wordID}", userWordHandler.ListByWord)
			r.Delete("/user-words/{userWordID}", userWordHandler.Delete)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
