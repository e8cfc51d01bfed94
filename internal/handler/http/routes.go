package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-hivemind/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceparent, h.withLogging, withGZip, h.withHashing)

	router.Post("/", h.submit)
	router.Get("/api/version", h.getServerVersion)
	router.Method("GET", "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/manager", h.clear)
		r.Get("/manager/exchanges", h.recentExchanges)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
