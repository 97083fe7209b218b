package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig selects the pieces of the router that vary by deployment.
type RouterConfig struct {
	StaticDir  string
	CORSOrigin string
}

// NewRouter builds the chi router with the global middleware stack, the
// activities API and the static front-end.
func NewRouter(cfg RouterConfig, h *ActivityHandler, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(Logger(log))
	r.Use(CORS(cfg.CORSOrigin))

	r.Get("/", RootRedirect)
	r.Get("/health", HealthCheck)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/activities", func(r chi.Router) {
		r.Get("/", h.ListActivities)
		r.Post("/{name}/signup", h.Signup)
		r.Delete("/{name}/unregister", h.Unregister)
	})

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
	r.Handle("/static/*", static)

	return r
}
