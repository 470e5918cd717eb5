package handlers

import (
	"net/http"

	"catdistribution/backend/middleware"
	"catdistribution/backend/services"
)

// GenerationHandler exposes server-side cat generation
type GenerationHandler struct {
	gen *services.Generation
}

func NewGenerationHandler(gen *services.Generation) *GenerationHandler {
	return &GenerationHandler{gen: gen}
}

// Start generates cats owned by the calling user
func (h *GenerationHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.gen.Start(r.Context(), middleware.GetUserIDFromContext(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.gen.Status())
}

func (h *GenerationHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.gen.Stop()
	writeJSON(w, http.StatusOK, h.gen.Status())
}

func (h *GenerationHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.gen.Status())
}
