package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// handleListDocuments serves both /documents and /campaigns/{id}/documents.
func (h *Handler) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.ListDocuments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	h.writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var in port.DocumentInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.AddDocument(r.Context(), actor(r), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, d)
}
