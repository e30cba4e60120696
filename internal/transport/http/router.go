package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"authgate/internal/platform/middleware"
)

// RouterConfig carries the middleware dependencies the router mounts.
type RouterConfig struct {
	Authorizer           middleware.Authorizer
	TrustedSubjectHeader string
	TrustedIssuer        string
}

// NewRouter assembles the HTTP surface. Protected routes sit behind the gate
// middleware; health and metrics stay public.
func (h *Handler) NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.TrustedContext(cfg.TrustedSubjectHeader, cfg.TrustedIssuer))

	r.Get("/healthz", h.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuthorization(cfg.Authorizer, h.logger))
		r.Get("/data", h.handleData)
	})

	return r
}
