// Package api is the HTTP and WebSocket surface of the portfolio bot.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/comigor/portfolio-bot/internal/session"
)

// NewRouter wires HTTP routes to the session manager.
func NewRouter(sessions *session.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&slogFormatter{}))
	r.Use(middleware.Recoverer)

	h := NewHandler(sessions)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		h.RegisterRoutes(api)
	})

	return r
}
