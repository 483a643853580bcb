package mirrorhandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/mirror"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Mirror *mirror.Engine
}

func NewHandler(mirrorEngine *mirror.Engine) *Handler {
	return &Handler{Mirror: mirrorEngine}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/mirror", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Use(middleware.RequireAdmin)
		r.Post("/sync", h.handleSyncAll)
		r.Post("/sync/{collection}", h.handleSyncOne)
	})
}

func (h *Handler) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	api.Success(w, h.Mirror.SyncAll(r.Context()), requestID)
}

func (h *Handler) handleSyncOne(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	collection := chi.URLParam(r, "collection")

	known := false
	for _, name := range mirror.Collections {
		if name == collection {
			known = true
			break
		}
	}
	if !known {
		api.Fail(w, http.StatusNotFound, "not_found", "unknown mirror collection", requestID)
		return
	}

	if !h.Mirror.SyncCollection(r.Context(), collection) {
		api.Fail(w, http.StatusInternalServerError, "sync_failed", "mirror sync failed", requestID)
		return
	}
	api.Success(w, map[string]string{"collection": collection}, requestID)
}
