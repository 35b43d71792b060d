package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"pauta-midia/internal/core/domain"
)

var csvHeader = []string{
	"Cliente",
	"Campanha",
	"Agência",
	"Atendimento",
	"Status",
	"Início",
	"Fim",
	"Orçamento",
	"Presença em",
	"Regiões",
	"Relatório recebido",
}

// handleOverview returns the management report. cliente, campanha and
// regioes_funcionais may be repeated.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context(), reportFilter(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, overview)
}

// handleOverviewCSV exports the filtered campaigns as CSV with a UTF-8 BOM
// so spreadsheet tools pick the right encoding.
func (h *Handler) handleOverviewCSV(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ReportCampaigns(r.Context(), reportFilter(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	fileName := fmt.Sprintf("relatorio_pautas_%s.csv", time.Now().Format(time.DateOnly))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.Write([]byte{0xEF, 0xBB, 0xBF})

	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err = csvWriter.Write(csvHeader); err != nil {
		h.logger.Error("write csv header", slog.Any("error", err))
		return
	}
	for _, c := range campaigns {
		if err = csvWriter.Write(h.csvRow(c)); err != nil {
			h.logger.Error("write csv row", slog.String("campaign_id", c.ID), slog.Any("error", err))
			return
		}
	}
}

func (h *Handler) csvRow(c domain.Campaign) []string {
	f := h.formatter
	date := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return f.Date(*t)
	}
	budget := ""
	if c.Budget != nil {
		budget = f.Currency(*c.Budget)
	}
	media := make([]string, len(c.Media))
	for i, m := range c.Media {
		media[i] = string(m)
	}
	regions := make([]string, len(c.Regions))
	for i, reg := range c.Regions {
		regions[i] = string(reg)
	}
	return []string{
		c.Client,
		c.Name,
		string(c.Agency),
		c.Responsible,
		string(c.Status),
		date(c.ExhibitionStart),
		date(c.ExhibitionEnd),
		budget,
		f.List(media),
		f.List(regions),
		f.Bool(c.ReportReceived),
	}
}
