package domain

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// CampaignFields are the user-visible attributes of a media-plan campaign.
// They exclude identity, timestamps and history, which are never diffed.
// Budgets are decimal amounts in the configured currency.
type CampaignFields struct {
	Client           string           `json:"cliente"`
	Name             string           `json:"campanha"`
	Agency           Agency           `json:"agencia"`
	Responsible      string           `json:"atendimento_responsavel"`
	Status           Status           `json:"status_plano"`
	ExhibitionStatus ExhibitionStatus `json:"exhibition_status"`

	BriefingDate     *time.Time `json:"data_entrada_pauta"`
	ExhibitionStart  *time.Time `json:"periodo_inicio"`
	ExhibitionEnd    *time.Time `json:"periodo_fim"`
	AgencyReturn     *time.Time `json:"data_prevista_retorno_agencia"`
	ReportReceivedOn *time.Time `json:"data_recebimento_relatorio"`

	// Derived from AgencyReturn and ExhibitionEnd on every save.
	FeedbackToAgency         *time.Time `json:"data_feedback_agencia"`
	ExpectedReportReceipt    *time.Time `json:"data_prevista_recebimento_relatorio"`
	InternalAnalysisDeadline *time.Time `json:"prazo_analise_interna"`

	Proa             string                           `json:"proa"`
	Briefing         string                           `json:"briefing"`
	Budget           *decimal.Decimal                 `json:"orcamento"`
	Comments         string                           `json:"comentarios"`
	AdjustmentNotes  string                           `json:"observacoes_ajustes"`
	SACProofReceived bool                             `json:"comprovantes_sac_recebidos"`
	ReportReceived   bool                             `json:"relatorio_recebido"`
	MediaPlanFile    string                           `json:"plano_midia_arquivo_nome"`
	ReportFile       string                           `json:"relatorio_arquivo_nome"`
	Media            []MediaChannel                   `json:"presenca_em"`
	BudgetByMedia    map[MediaChannel]decimal.Decimal `json:"orcamento_por_midia"`
	Regions          []Region                         `json:"regioes_funcionais"`
}

// Campaign represents a media-plan campaign together with its audit trail.
// History is ordered oldest first and only ever grows.
type Campaign struct {
	ID string `json:"id"`
	CampaignFields
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	History   []HistoryEntry `json:"history,omitempty"`
}

// PruneMediaBudgets drops budget entries for channels that are not selected.
func (f *CampaignFields) PruneMediaBudgets() {
	for media := range f.BudgetByMedia {
		if !slices.Contains(f.Media, media) {
			delete(f.BudgetByMedia, media)
		}
	}
}

// TrackedDeadline returns the deadline the team is currently working
// against: the expected report receipt while waiting for the report, the
// internal analysis deadline otherwise.
func (c Campaign) TrackedDeadline() *time.Time {
	if c.Status == StatusAwaitingReport {
		return c.ExpectedReportReceipt
	}
	return c.InternalAnalysisDeadline
}

// Clone returns a deep copy of the fields.
func (f CampaignFields) Clone() CampaignFields {
	out := f
	out.BriefingDate = cloneTime(f.BriefingDate)
	out.ExhibitionStart = cloneTime(f.ExhibitionStart)
	out.ExhibitionEnd = cloneTime(f.ExhibitionEnd)
	out.AgencyReturn = cloneTime(f.AgencyReturn)
	out.ReportReceivedOn = cloneTime(f.ReportReceivedOn)
	out.FeedbackToAgency = cloneTime(f.FeedbackToAgency)
	out.ExpectedReportReceipt = cloneTime(f.ExpectedReportReceipt)
	out.InternalAnalysisDeadline = cloneTime(f.InternalAnalysisDeadline)
	if f.Budget != nil {
		b := *f.Budget
		out.Budget = &b
	}
	out.Media = slices.Clone(f.Media)
	out.Regions = slices.Clone(f.Regions)
	if f.BudgetByMedia != nil {
		out.BudgetByMedia = make(map[MediaChannel]decimal.Decimal, len(f.BudgetByMedia))
		for k, v := range f.BudgetByMedia {
			out.BudgetByMedia[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the campaign, history included.
func (c Campaign) Clone() Campaign {
	out := c
	out.CampaignFields = c.CampaignFields.Clone()
	if c.History != nil {
		out.History = make([]HistoryEntry, len(c.History))
		for i, h := range c.History {
			out.History[i] = h.Clone()
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
