package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/report"
)

// CampaignUseCase defines the business operations of the media-plan tracker.
// It is the primary port into the application domain. Every write takes
// the display name of the acting user and records it in the history.
type CampaignUseCase interface {
	// CreateCampaign stores a new campaign with derived deadlines and a
	// single "Projeto criado." history entry.
	CreateCampaign(ctx context.Context, actor string, in CampaignInput) (*domain.Campaign, error)
	// UpdateCampaign runs the audited save path: derive deadlines, diff
	// against the stored campaign and append one history entry.
	UpdateCampaign(ctx context.Context, actor, id string, in CampaignInput) (*domain.Campaign, error)
	// ChangeStatus moves a campaign to another status through the audited
	// save path. Any status may follow any other.
	ChangeStatus(ctx context.Context, actor, id string, status domain.Status) (*domain.Campaign, error)
	// RegisterReport marks the campaign report as received.
	RegisterReport(ctx context.Context, actor, id string, r ReportReceipt) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*CampaignView, error)
	// ListCampaigns returns the campaigns matching filter with their
	// deadline indicator as of today.
	ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]CampaignView, error)
	DeleteCampaign(ctx context.Context, id string) error
	// History returns the audit trail of a campaign, oldest first.
	History(ctx context.Context, id string) ([]domain.HistoryEntry, error)

	// DueNotifications lists the deadlines falling on day. A zero day means
	// today.
	DueNotifications(ctx context.Context, day time.Time) ([]domain.Notification, error)
	// Overview aggregates the campaigns accepted by filter.
	Overview(ctx context.Context, filter report.Filter) (*report.Overview, error)
	// ReportCampaigns returns the campaigns accepted by filter, used for the
	// CSV export of the overview.
	ReportCampaigns(ctx context.Context, filter report.Filter) ([]domain.Campaign, error)

	AddDocument(ctx context.Context, actor, campaignID string, in DocumentInput) (*domain.Document, error)
	ListDocuments(ctx context.Context, campaignID string) ([]domain.Document, error)

	// EditImage applies a text instruction to an image. It returns
	// ErrImageEditorDisabled when no editor is configured and
	// ErrFileTooLarge when the image exceeds MaxImageSize.
	EditImage(ctx context.Context, img Image, prompt string) (*Image, error)
}

// CampaignInput is the form submitted on create and update. Dates are
// "YYYY-MM-DD" strings; an empty or malformed date means no date. Derived
// deadlines and report receipt data are not part of the form; a blank
// ReportFile keeps the file name stored by RegisterReport.
type CampaignInput struct {
	Client           string                                  `json:"cliente"`
	Name             string                                  `json:"campanha"`
	Agency           domain.Agency                           `json:"agencia"`
	Responsible      string                                  `json:"atendimento_responsavel"`
	Status           domain.Status                           `json:"status_plano"`
	ExhibitionStatus domain.ExhibitionStatus                 `json:"exhibition_status"`
	BriefingDate     string                                  `json:"data_entrada_pauta"`
	ExhibitionStart  string                                  `json:"periodo_inicio"`
	ExhibitionEnd    string                                  `json:"periodo_fim"`
	AgencyReturn     string                                  `json:"data_prevista_retorno_agencia"`
	Proa             string                                  `json:"proa"`
	Briefing         string                                  `json:"briefing"`
	Budget           *decimal.Decimal                        `json:"orcamento"`
	Comments         string                                  `json:"comentarios"`
	AdjustmentNotes  string                                  `json:"observacoes_ajustes"`
	SACProofReceived bool                                    `json:"comprovantes_sac_recebidos"`
	MediaPlanFile    string                                  `json:"plano_midia_arquivo_nome"`
	ReportFile       string                                  `json:"relatorio_arquivo_nome"`
	Media            []domain.MediaChannel                   `json:"presenca_em"`
	BudgetByMedia    map[domain.MediaChannel]decimal.Decimal `json:"orcamento_por_midia"`
	Regions          []domain.Region                         `json:"regioes_funcionais"`
}

// ReportReceipt registers the arrival of a campaign report. An empty
// ReceivedOn means today.
type ReportReceipt struct {
	ReceivedOn string `json:"data_recebimento_relatorio"`
	FileName   string `json:"relatorio_arquivo_nome"`
}

type DocumentInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CampaignView is a campaign as shown on the dashboard.
type CampaignView struct {
	domain.Campaign
	Deadline *deadline.Indicator `json:"deadline,omitempty"`
}

// MaxImageSize is the largest image accepted for editing, in bytes.
const MaxImageSize = 2 << 20

type Image struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type"`
}

// ImageEditor edits images following a text instruction. It is an outbound
// port implemented by a generative model client.
type ImageEditor interface {
	EditImage(ctx context.Context, img Image, prompt string) (*Image, error)
}

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
