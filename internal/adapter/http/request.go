package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
	"pauta-midia/internal/core/report"
)

// maxBodySize bounds JSON bodies. Image edits carry a base64 payload of up
// to port.MaxImageSize bytes.
const maxBodySize = 4 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func actor(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(ActorHeader))
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("body exceeds %d bytes: %w", tooLarge.Limit, port.ErrFileTooLarge)
		}
		return fmt.Errorf("invalid JSON: %w", port.ErrInvalidInput)
	}
	return nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps port errors to status codes. Anything unknown is logged
// and reported as a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrInvalidCampaign), errors.Is(err, port.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrActorRequired):
		status = http.StatusUnauthorized
	case errors.Is(err, port.ErrDocumentExists):
		status = http.StatusConflict
	case errors.Is(err, port.ErrFileTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, port.ErrImageEditorDisabled):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// values returns every value of a repeated query parameter, skipping blanks.
func values[T ~string](q url.Values, key string) []T {
	var out []T
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, T(v))
		}
	}
	return out
}

func queryDate(q url.Values, key string) (*time.Time, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, raw, port.ErrInvalidInput)
	}
	return &t, nil
}

func campaignFilter(q url.Values) (domain.CampaignFilter, error) {
	f := domain.CampaignFilter{
		Agency:      domain.Agency(strings.TrimSpace(q.Get("agencia"))),
		Responsible: strings.TrimSpace(q.Get("atendimento_responsavel")),
		Client:      strings.TrimSpace(q.Get("cliente")),
		Statuses:    values[domain.Status](q, "status_plano"),
		Media:       values[domain.MediaChannel](q, "presenca_em"),
		Regions:     values[domain.Region](q, "regioes_funcionais"),
	}
	var err error
	if f.From, err = queryDate(q, "periodo_inicio"); err != nil {
		return f, err
	}
	if f.To, err = queryDate(q, "periodo_fim"); err != nil {
		return f, err
	}
	return f, nil
}

func reportFilter(q url.Values) report.Filter {
	return report.Filter{
		Clients:   values[string](q, "cliente"),
		Campaigns: values[string](q, "campanha"),
		Regions:   values[domain.Region](q, "regioes_funcionais"),
	}
}
