package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"pauta-midia/internal/core/locale"
	"pauta-midia/internal/core/port"
)

// ActorHeader carries the display name of the user performing a write.
const ActorHeader = "X-User-Name"

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case, the formatter used by the CSV export and a
// logger for structured logging.
type Handler struct {
	svc       port.CampaignUseCase
	formatter *locale.Formatter
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. A nil formatter
// uses pt-BR with BRL.
func NewHandler(svc port.CampaignUseCase, formatter *locale.Formatter, logger *slog.Logger) *Handler {
	if formatter == nil {
		formatter = locale.Default()
	}
	h := &Handler{svc: svc, formatter: formatter, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Put("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleDeleteCampaign)
				r.Patch("/status", h.handleChangeStatus)
				r.Post("/report", h.handleRegisterReport)
				r.Get("/history", h.handleHistory)
				r.Get("/documents", h.handleListDocuments)
				r.Post("/documents", h.handleAddDocument)
			})
		})
		r.Get("/documents", h.handleListDocuments)
		r.Get("/notifications/due", h.handleDueNotifications)
		r.Get("/reports/overview", h.handleOverview)
		r.Get("/reports/overview.csv", h.handleOverviewCSV)
		r.Post("/images/edit", h.handleEditImage)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
