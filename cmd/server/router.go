package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/taskboard-api/internal/api"
	apimiddleware "github.com/phrazzld/taskboard-api/internal/api/middleware"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
	"github.com/phrazzld/taskboard-api/internal/store"
)

// routerDeps carries the wired dependencies the router needs to build
// handlers. Stores arrive as interfaces so tests can substitute stubs.
type routerDeps struct {
	logger     *slog.Logger
	jwtService auth.JWTService
	userStore  store.UserStore
	boardStore store.BoardStore
	taskStore  store.TaskStore
}

// newRouter builds the chi router with all routes and middleware. Every
// route except the liveness probe, token issuing, registration, health and
// metrics sits behind the JWT gate.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.TraceMiddleware)
	r.Use(apimiddleware.MetricsMiddleware)
	r.Use(apimiddleware.Recoverer)

	authHandler := api.NewAuthHandler(deps.jwtService)
	userHandler := api.NewUserHandler(deps.userStore)
	boardHandler := api.NewBoardHandler(deps.boardStore)
	taskHandler := api.NewTaskHandler(deps.taskStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(deps.jwtService)

	// Liveness probe
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("DND Task Management is running...")); err != nil {
			deps.logger.Error("failed to write liveness response",
				slog.String("error", err.Error()))
		}
	})

	// Public endpoints
	r.Post("/jwt", authHandler.GenerateToken)
	r.Post("/users", userHandler.Create)

	// Protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/users", userHandler.List)

		r.Post("/categories", boardHandler.Create)
		r.Get("/categories/{uid}", boardHandler.ListByOwner)
		r.Delete("/categories/{id}", boardHandler.DeleteCascade)

		r.Post("/add-task", taskHandler.Create)
		r.Get("/tasks/{uid}", taskHandler.ListByOwner)
		r.Delete("/tasks/{id}", taskHandler.Delete)
		r.Put("/tasks/update-task/{id}", taskHandler.Update)
		r.Put("/tasks/update-task-category/{uid}", taskHandler.ReplaceAll)
	})

	// Operational endpoints
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.logger.Error("failed to write health check response",
				slog.String("error", err.Error()))
		}
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
