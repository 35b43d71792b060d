package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

type statusRequest struct {
	Status domain.Status `json:"status_plano"`
}

// handleListCampaigns returns the dashboard list. Query parameters follow
// the filter panel; status_plano, presenca_em and regioes_funcionais may be
// repeated.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	filter, err := campaignFilter(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	views, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if views == nil {
		views = []port.CampaignView{}
	}
	h.writeJSON(w, http.StatusOK, views)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), actor(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, v)
}

// handleUpdateCampaign saves the full form. The response carries the new
// history entry at the end of the campaign history.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in port.CampaignInput
	if err := decode(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.UpdateCampaign(r.Context(), actor(r), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.ChangeStatus(r.Context(), actor(r), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleRegisterReport(w http.ResponseWriter, r *http.Request) {
	var req port.ReportReceipt
	if err := decode(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.RegisterReport(r.Context(), actor(r), chi.URLParam(r, "id"), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if actor(r) == "" {
		h.writeError(w, r, port.ErrActorRequired)
		return
	}
	if err := h.svc.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.svc.History(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	h.writeJSON(w, http.StatusOK, history)
}
