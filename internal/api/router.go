package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/securebank/frauddesk/internal/orchestrator"
	"github.com/securebank/frauddesk/internal/presenter"
	"github.com/securebank/frauddesk/internal/scoring"
	"github.com/securebank/frauddesk/internal/session"
)

// NewRouter creates the Chi router with the dashboard page, the JSON API,
// the WebSocket frame stream and the operational endpoints mounted.
func NewRouter(
	orch *orchestrator.Orchestrator,
	sess *session.Session,
	pres *presenter.Presenter,
	hub *presenter.Hub,
	options *scoring.Options,
) http.Handler {
	h := &Handlers{
		orch:    orch,
		session: sess,
		pres:    pres,
		options: options,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.SetHeader("Content-Type", "application/json"))

		r.Post("/analyze", h.Analyze)
		r.Get("/history", h.GetHistory)
		r.Get("/state", h.GetState)
		r.Post("/reset", h.Reset)
		r.Get("/options", h.GetOptions)
	})

	r.Get("/ws", hub.HandleWebSocket)
	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/", h.Dashboard)

	return r
}
