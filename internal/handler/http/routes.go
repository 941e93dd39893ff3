package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Post("/api/session/ensure", h.ensureSession)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with a guest session
	router.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Get("/api/quote", h.getQuote)
		r.Put("/api/quote", h.putQuote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
