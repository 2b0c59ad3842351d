package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BuzzLyutic/taskboard-api/pkg/respond"
)

// NewRouter собирает таблицу маршрутов API и статический fallback
func NewRouter(secret []byte, authH *AuthHandler, projectH *ProjectHandler, taskH *TaskHandler, static *Static) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/api/auth/register", authH.Register)
	r.Post("/api/auth/login", authH.Login)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(secret))
		r.Get("/api/me", authH.Me)
		r.Get("/api/projects", projectH.List)
		r.Post("/api/projects", projectH.Create)
		r.Get("/api/tasks", taskH.List)
		r.Post("/api/tasks", taskH.Create)
	})

	// Несовпавший путь — либо файл фронтенда, либо 404
	r.NotFound(static.ServeHTTP)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, r, http.StatusNotFound, "Route not found")
	})

	return r
}
