package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"pauta-midia/internal/core/audit"
	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
	"pauta-midia/internal/core/report"
)

// CampaignUseCase implements port.CampaignUseCase. It orchestrates the
// deadline calculator, the change auditor and the repositories; every save
// of an existing campaign goes through save, which runs inside the
// repository's per-campaign critical section.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	documents port.DocumentRepository
	auditor   *audit.Auditor
	images    port.ImageEditor
	clock     port.Clock
	log       *slog.Logger
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates the use case. images may be nil, in which case
// EditImage reports ErrImageEditorDisabled. A nil clock uses time.Now and a
// nil logger uses slog.Default.
func NewCampaignUseCase(
	campaigns port.CampaignRepository,
	documents port.DocumentRepository,
	auditor *audit.Auditor,
	images port.ImageEditor,
	clock port.Clock,
	log *slog.Logger,
) *CampaignUseCase {
	if auditor == nil {
		auditor = audit.New(nil)
	}
	if clock == nil {
		clock = port.ClockFunc(time.Now)
	}
	if log == nil {
		log = slog.Default()
	}
	return &CampaignUseCase{
		campaigns: campaigns,
		documents: documents,
		auditor:   auditor,
		images:    images,
		clock:     clock,
		log:       log,
	}
}

func (u *CampaignUseCase) CreateCampaign(ctx context.Context, actor string, in port.CampaignInput) (*domain.Campaign, error) {
	actor, err := requireActor(actor)
	if err != nil {
		return nil, err
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	fields := u.formFields("", in)
	if fields.Status == "" {
		fields.Status = domain.StatusPlanning
	}
	if fields.ExhibitionStatus == "" {
		fields.ExhibitionStatus = domain.ExhibitionPending
	}
	prepare(&fields)

	now := u.clock.Now()
	c := domain.Campaign{
		ID:             uuid.NewString(),
		CampaignFields: fields,
		CreatedAt:      now,
		UpdatedAt:      now,
		History:        []domain.HistoryEntry{domain.NewHistoryEntry(actor, now, []string{domain.ChangeCreated})},
	}
	if err := u.campaigns.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	u.log.Info("campaign created",
		"event", "campaign_created",
		"campaign_id", c.ID,
		"actor", actor,
	)
	return &c, nil
}

func (u *CampaignUseCase) UpdateCampaign(ctx context.Context, actor, id string, in port.CampaignInput) (*domain.Campaign, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	form := u.formFields(id, in)
	return u.save(ctx, actor, id, "campaign_updated", func(f *domain.CampaignFields) {
		next := form.Clone()
		// Report receipt is registered separately and survives form edits.
		// A blank report file name keeps the stored one.
		next.ReportReceived = f.ReportReceived
		next.ReportReceivedOn = f.ReportReceivedOn
		if next.ReportFile == "" {
			next.ReportFile = f.ReportFile
		}
		if next.Status == "" {
			next.Status = f.Status
		}
		if next.ExhibitionStatus == "" {
			next.ExhibitionStatus = f.ExhibitionStatus
		}
		*f = next
	})
}

func (u *CampaignUseCase) ChangeStatus(ctx context.Context, actor, id string, status domain.Status) (*domain.Campaign, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", status, port.ErrInvalidCampaign)
	}
	return u.save(ctx, actor, id, "campaign_status_changed", func(f *domain.CampaignFields) {
		f.Status = status
	})
}

func (u *CampaignUseCase) RegisterReport(ctx context.Context, actor, id string, r port.ReportReceipt) (*domain.Campaign, error) {
	received := u.parseDate(id, "data_recebimento_relatorio", r.ReceivedOn)
	if received == nil {
		today := deadline.Normalize(u.clock.Now())
		received = &today
	}
	fileName := strings.TrimSpace(r.FileName)
	return u.save(ctx, actor, id, "campaign_report_registered", func(f *domain.CampaignFields) {
		f.ReportReceived = true
		f.ReportReceivedOn = received
		if fileName != "" {
			f.ReportFile = fileName
		}
	})
}

// save is the audited save path: edit a copy of the stored fields, derive
// the dependent deadlines, diff against the stored campaign and append one
// history entry. The repository runs it as one serialized unit per
// campaign.
func (u *CampaignUseCase) save(ctx context.Context, actor, id, event string, edit func(*domain.CampaignFields)) (*domain.Campaign, error) {
	actor, err := requireActor(actor)
	if err != nil {
		return nil, err
	}

	var changes int
	c, err := u.campaigns.UpdateCampaign(ctx, id, func(c *domain.Campaign) (domain.HistoryEntry, error) {
		proposed := c.CampaignFields.Clone()
		edit(&proposed)
		prepare(&proposed)

		now := u.clock.Now()
		entry := u.auditor.Entry(actor, now, c.CampaignFields, proposed)
		if entry.Changes[0] != domain.ChangeNoChanges {
			changes = len(entry.Changes)
		}
		c.CampaignFields = proposed
		c.UpdatedAt = now
		return entry, nil
	})
	if err != nil {
		return nil, fmt.Errorf("save campaign %s: %w", id, err)
	}

	u.log.Info("campaign saved",
		"event", event,
		"campaign_id", id,
		"actor", actor,
		"changes", changes,
	)
	return c, nil
}

func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*port.CampaignView, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", id, err)
	}
	view := u.view(*c, deadline.Normalize(u.clock.Now()))
	return &view, nil
}

func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter domain.CampaignFilter) ([]port.CampaignView, error) {
	all, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	today := deadline.Normalize(u.clock.Now())
	out := make([]port.CampaignView, 0, len(all))
	for _, c := range all {
		if filter.Match(c) {
			out = append(out, u.view(c, today))
		}
	}
	return out, nil
}

func (u *CampaignUseCase) view(c domain.Campaign, today time.Time) port.CampaignView {
	return port.CampaignView{Campaign: c, Deadline: deadline.Evaluate(c.TrackedDeadline(), today)}
}

func (u *CampaignUseCase) DeleteCampaign(ctx context.Context, id string) error {
	if err := u.campaigns.DeleteCampaign(ctx, id); err != nil {
		return fmt.Errorf("delete campaign %s: %w", id, err)
	}
	u.log.Info("campaign deleted",
		"event", "campaign_deleted",
		"campaign_id", id,
	)
	return nil
}

func (u *CampaignUseCase) History(ctx context.Context, id string) ([]domain.HistoryEntry, error) {
	c, err := u.campaigns.GetCampaign(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get history %s: %w", id, err)
	}
	return c.History, nil
}

func (u *CampaignUseCase) DueNotifications(ctx context.Context, day time.Time) ([]domain.Notification, error) {
	if day.IsZero() {
		day = u.clock.Now()
	}
	all, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return report.DueOn(all, day), nil
}

func (u *CampaignUseCase) Overview(ctx context.Context, filter report.Filter) (*report.Overview, error) {
	all, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	o := report.Build(all, filter)
	return &o, nil
}

func (u *CampaignUseCase) ReportCampaigns(ctx context.Context, filter report.Filter) ([]domain.Campaign, error) {
	all, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	out := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *CampaignUseCase) AddDocument(ctx context.Context, actor, campaignID string, in port.DocumentInput) (*domain.Document, error) {
	actor, err := requireActor(actor)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("document name is required: %w", port.ErrInvalidInput)
	}
	c, err := u.campaigns.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", campaignID, err)
	}

	d := domain.Document{
		ID:           uuid.NewString(),
		CampaignID:   c.ID,
		CampaignName: c.Name,
		Name:         name,
		Type:         domain.DocumentTypeFromName(name),
		URL:          strings.TrimSpace(in.URL),
		UploadedAt:   u.clock.Now(),
	}
	if err := u.documents.AddDocument(ctx, d); err != nil {
		return nil, fmt.Errorf("add document: %w", err)
	}

	u.log.Info("document added",
		"event", "document_added",
		"campaign_id", c.ID,
		"document_id", d.ID,
		"actor", actor,
	)
	return &d, nil
}

func (u *CampaignUseCase) ListDocuments(ctx context.Context, campaignID string) ([]domain.Document, error) {
	docs, err := u.documents.ListDocuments(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

func (u *CampaignUseCase) EditImage(ctx context.Context, img port.Image, prompt string) (*port.Image, error) {
	if u.images == nil {
		return nil, port.ErrImageEditorDisabled
	}
	if len(img.Data) == 0 || strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("image and prompt are required: %w", port.ErrInvalidInput)
	}
	if len(img.Data) > port.MaxImageSize {
		return nil, fmt.Errorf("image has %d bytes: %w", len(img.Data), port.ErrFileTooLarge)
	}
	if !strings.HasPrefix(img.MIMEType, "image/") {
		return nil, fmt.Errorf("unsupported type %q: %w", img.MIMEType, port.ErrInvalidInput)
	}

	out, err := u.images.EditImage(ctx, img, strings.TrimSpace(prompt))
	if err != nil {
		return nil, fmt.Errorf("edit image: %w", err)
	}
	u.log.Info("image edited",
		"event", "image_edited",
		"input_bytes", len(img.Data),
		"output_bytes", len(out.Data),
	)
	return out, nil
}

// prepare enforces the invariants of a campaign about to be stored: derived
// deadlines come from the anchors only and budgets exist only for selected
// channels.
func prepare(f *domain.CampaignFields) {
	d := deadline.Derive(deadline.Anchors{
		AgencyReturn:  f.AgencyReturn,
		ExhibitionEnd: f.ExhibitionEnd,
	})
	f.FeedbackToAgency = d.FeedbackToAgency
	f.ExpectedReportReceipt = d.ExpectedReportReceipt
	f.InternalAnalysisDeadline = d.InternalAnalysisDeadline
	f.PruneMediaBudgets()
}

func requireActor(actor string) (string, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return "", port.ErrActorRequired
	}
	return actor, nil
}
