package usecase

import (
	"fmt"
	"strings"
	"time"

	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// formFields converts the submitted form into campaign fields. Derived
// deadlines and report receipt data are left empty.
func (u *CampaignUseCase) formFields(id string, in port.CampaignInput) domain.CampaignFields {
	f := domain.CampaignFields{
		Client:           strings.TrimSpace(in.Client),
		Name:             strings.TrimSpace(in.Name),
		Agency:           in.Agency,
		Responsible:      strings.TrimSpace(in.Responsible),
		Status:           in.Status,
		ExhibitionStatus: in.ExhibitionStatus,
		BriefingDate:     u.parseDate(id, "data_entrada_pauta", in.BriefingDate),
		ExhibitionStart:  u.parseDate(id, "periodo_inicio", in.ExhibitionStart),
		ExhibitionEnd:    u.parseDate(id, "periodo_fim", in.ExhibitionEnd),
		AgencyReturn:     u.parseDate(id, "data_prevista_retorno_agencia", in.AgencyReturn),
		Proa:             in.Proa,
		Briefing:         in.Briefing,
		Comments:         in.Comments,
		AdjustmentNotes:  in.AdjustmentNotes,
		SACProofReceived: in.SACProofReceived,
		MediaPlanFile:    in.MediaPlanFile,
		ReportFile:       in.ReportFile,
		Media:            in.Media,
		Regions:          in.Regions,
		Budget:           in.Budget,
		BudgetByMedia:    in.BudgetByMedia,
	}
	return f.Clone()
}

var dateLayouts = []string{time.DateOnly, time.RFC3339}

// parseDate reads a form date. Blank means no date. A value that cannot be
// parsed also means no date and is logged as a warning.
func (u *CampaignUseCase) parseDate(campaignID, field, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := deadline.Normalize(t)
			return &d
		}
	}
	u.log.Warn("malformed date ignored",
		"event", "malformed_date",
		"campaign_id", campaignID,
		"field", field,
		"value", raw,
	)
	return nil
}

func validate(in port.CampaignInput) error {
	var problems []string
	if strings.TrimSpace(in.Name) == "" {
		problems = append(problems, "campanha is required")
	}
	if in.Agency != "" && !in.Agency.Valid() {
		problems = append(problems, fmt.Sprintf("unknown agencia %q", in.Agency))
	}
	if in.Status != "" && !in.Status.Valid() {
		problems = append(problems, fmt.Sprintf("unknown status_plano %q", in.Status))
	}
	if in.ExhibitionStatus != "" && !in.ExhibitionStatus.Valid() {
		problems = append(problems, fmt.Sprintf("unknown exhibition_status %q", in.ExhibitionStatus))
	}
	if in.Budget != nil && in.Budget.IsNegative() {
		problems = append(problems, "orcamento must not be negative")
	}
	for _, m := range in.Media {
		if !m.Valid() {
			problems = append(problems, fmt.Sprintf("unknown presenca_em %q", m))
		}
	}
	for m, v := range in.BudgetByMedia {
		if !m.Valid() {
			problems = append(problems, fmt.Sprintf("unknown orcamento_por_midia channel %q", m))
		}
		if v.IsNegative() {
			problems = append(problems, fmt.Sprintf("orcamento_por_midia for %q must not be negative", m))
		}
	}
	for _, r := range in.Regions {
		if !r.Valid() {
			problems = append(problems, fmt.Sprintf("unknown regioes_funcionais %q", r))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), port.ErrInvalidCampaign)
	}
	return nil
}
