package httpadapter

import (
	"net/http"

	"pauta-midia/internal/core/port"
)

// imageEditRequest carries the image as base64 in "image".
type imageEditRequest struct {
	Image    []byte `json:"image"`
	MIMEType string `json:"mime_type"`
	Prompt   string `json:"prompt"`
}

func (h *Handler) handleEditImage(w http.ResponseWriter, r *http.Request) {
	var req imageEditRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	out, err := h.svc.EditImage(r.Context(), port.Image{Data: req.Image, MIMEType: req.MIMEType}, req.Prompt)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, out)
}
