package http

import (
	"compress/gzip"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(middleware.Compress(gzip.DefaultCompression, "application/json"))

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/users", func(users chi.Router) {
			users.Post("/", h.createUser)
			users.Get("/", h.listUsers)
			users.Post("/login", h.login)
			users.Post("/verify", h.verifyUser)

			users.Get("/{id}", h.getUser)
			users.With(h.auth).Put("/{id}", h.updateUser)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
