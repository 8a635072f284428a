package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Group(func(r chi.Router) {
		r.Post("/api/attachments", h.uploadAttachment)
		r.Get("/api/attachments", h.listAttachments)
		r.Get("/api/attachments/{id}", h.downloadAttachment)
		r.Delete("/api/attachments/{id}", h.deleteAttachment)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
