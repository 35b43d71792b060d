package httpadapter

import (
	"net/http"
	"time"

	"pauta-midia/internal/core/domain"
)

// handleDueNotifications lists deadlines falling on ?date=YYYY-MM-DD,
// today when omitted.
func (h *Handler) handleDueNotifications(w http.ResponseWriter, r *http.Request) {
	day, err := queryDate(r.URL.Query(), "date")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var on time.Time
	if day != nil {
		on = *day
	}
	items, err := h.svc.DueNotifications(r.Context(), on)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Notification{}
	}
	h.writeJSON(w, http.StatusOK, items)
}
