package audit

import "pauta-midia/internal/core/domain"

// Kind selects how a field is compared and rendered.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindMoney
	KindBool
	KindList
	KindBudgetMap
)

// Field describes one auditable campaign attribute.
type Field struct {
	Key   string
	Label string
	Kind  Kind
	// Value returns the attribute with the Go type matching Kind: string,
	// *time.Time, *decimal.Decimal, bool, []string or
	// map[domain.MediaChannel]decimal.Decimal.
	Value func(domain.CampaignFields) any
}

// Fields is the ordered list of auditable attributes, in form order.
// Derived dates are recomputed on every save and are not listed.
var Fields = []Field{
	{"cliente", "Órgão demandante", KindText, func(c domain.CampaignFields) any { return c.Client }},
	{"campanha", "Campanha", KindText, func(c domain.CampaignFields) any { return c.Name }},
	{"agencia", "Agência", KindText, func(c domain.CampaignFields) any { return string(c.Agency) }},
	{"atendimento_responsavel", "Atendimento", KindText, func(c domain.CampaignFields) any { return c.Responsible }},
	{"periodo_inicio", "Início da exibição", KindDate, func(c domain.CampaignFields) any { return c.ExhibitionStart }},
	{"periodo_fim", "Término da exibição", KindDate, func(c domain.CampaignFields) any { return c.ExhibitionEnd }},
	{"data_entrada_pauta", "Data do briefing", KindDate, func(c domain.CampaignFields) any { return c.BriefingDate }},
	{"data_prevista_retorno_agencia", "Retorno da agência", KindDate, func(c domain.CampaignFields) any { return c.AgencyReturn }},
	{"status_plano", "Status", KindText, func(c domain.CampaignFields) any { return string(c.Status) }},
	{"proa", "PROA Nativo", KindText, func(c domain.CampaignFields) any { return c.Proa }},
	{"briefing", "Briefing", KindText, func(c domain.CampaignFields) any { return c.Briefing }},
	{"orcamento", "Orçamento", KindMoney, func(c domain.CampaignFields) any { return c.Budget }},
	{"comentarios", "Comentários", KindText, func(c domain.CampaignFields) any { return c.Comments }},
	{"observacoes_ajustes", "Observações/Ajustes", KindText, func(c domain.CampaignFields) any { return c.AdjustmentNotes }},
	{"comprovantes_sac_recebidos", "Comprovantes SAC recebidos", KindBool, func(c domain.CampaignFields) any { return c.SACProofReceived }},
	{"relatorio_recebido", "Relatório recebido", KindBool, func(c domain.CampaignFields) any { return c.ReportReceived }},
	{"data_recebimento_relatorio", "Recebimento do relatório", KindDate, func(c domain.CampaignFields) any { return c.ReportReceivedOn }},
	{"plano_midia_arquivo_nome", "Arquivo do plano de mídia", KindText, func(c domain.CampaignFields) any { return c.MediaPlanFile }},
	{"relatorio_arquivo_nome", "Arquivo do relatório", KindText, func(c domain.CampaignFields) any { return c.ReportFile }},
	{"presenca_em", "Presença em", KindList, func(c domain.CampaignFields) any { return toStrings(c.Media) }},
	{"orcamento_por_midia", "Orçamento por mídia", KindBudgetMap, func(c domain.CampaignFields) any { return c.BudgetByMedia }},
	{"exhibition_status", "Status da exibição", KindText, func(c domain.CampaignFields) any { return string(c.ExhibitionStatus) }},
	{"regioes_funcionais", "Regiões Funcionais", KindList, func(c domain.CampaignFields) any { return toStrings(c.Regions) }},
}

// Label returns the display label for key, or key itself when unknown.
func Label(key string) string {
	for _, f := range Fields {
		if f.Key == key {
			return f.Label
		}
	}
	return key
}

func toStrings[T ~string](values []T) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
