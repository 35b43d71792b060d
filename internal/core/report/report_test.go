package report

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pauta-midia/internal/core/domain"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func fixtures() []domain.Campaign {
	return []domain.Campaign{
		{ID: "a", CampaignFields: domain.CampaignFields{
			Client: "Saúde", Name: "Vacina", Agency: domain.AgencyHOC, Responsible: "Ana",
			Status: domain.StatusCompleted, Budget: money(1000),
			BriefingDate: day(2024, 1, 5), ExhibitionStart: day(2024, 1, 10), ExhibitionEnd: day(2024, 1, 20),
			ExpectedReportReceipt: day(2024, 2, 2), ReportReceived: true, ReportReceivedOn: day(2024, 2, 1),
			Media:         []domain.MediaChannel{domain.MediaTelevision, domain.MediaRadio},
			BudgetByMedia: map[domain.MediaChannel]decimal.Decimal{domain.MediaTelevision: decimal.NewFromInt(700), domain.MediaRadio: decimal.NewFromInt(300)},
			Regions:       []domain.Region{domain.RegionRF1},
		}},
		{ID: "b", CampaignFields: domain.CampaignFields{
			Client: "Educação", Name: "Matrícula", Agency: domain.AgencyEscala, Responsible: "Ana",
			Status: domain.StatusInExecution, Budget: money(3000),
			BriefingDate: day(2024, 1, 25), ExhibitionStart: day(2024, 2, 1), ExhibitionEnd: day(2024, 2, 6),
			ExpectedReportReceipt: day(2024, 2, 20), ReportReceived: true, ReportReceivedOn: day(2024, 2, 22),
			Media:         []domain.MediaChannel{domain.MediaRadio},
			BudgetByMedia: map[domain.MediaChannel]decimal.Decimal{domain.MediaRadio: decimal.NewFromInt(3000)},
			Regions:       []domain.Region{domain.RegionRF1, domain.RegionRF8},
		}},
		{ID: "c", CampaignFields: domain.CampaignFields{
			Client: "Saúde", Name: "Dengue", Agency: domain.AgencyHOC, Responsible: "Bruno",
			Status: domain.StatusPlanning, BriefingDate: day(2023, 12, 1),
		}},
	}
}

func TestBuild(t *testing.T) {
	got := Build(fixtures(), Filter{})

	assert.Equal(t, 3, got.TotalCampaigns)
	assert.True(t, got.TotalBudget.Equal(decimal.NewFromInt(4000)))
	assert.InDelta(t, 50.0, got.PunctualityRate, 0.001)
	assert.InDelta(t, 7.5, got.AverageDuration, 0.001)

	require.Len(t, got.BudgetByAgency, 2)
	assert.Equal(t, "Escala", got.BudgetByAgency[0].Key)
	assert.Equal(t, "HOC", got.BudgetByAgency[1].Key)

	if diff := cmp.Diff([]Count{
		{Key: "Planejamento", Count: 1},
		{Key: "Em Execução", Count: 1},
		{Key: "Concluída", Count: 1},
	}, got.StatusDistribution); diff != "" {
		t.Errorf("status distribution mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Month{
		{Key: "2023-12", Count: 1},
		{Key: "2024-01", Count: 2},
	}, got.CampaignsByMonth); diff != "" {
		t.Errorf("campaigns by month mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Count{
		{Key: "Rádio", Count: 2},
		{Key: "Televisão", Count: 1},
	}, got.MediaUsage); diff != "" {
		t.Errorf("media usage mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, got.BudgetByMedia, 2)
	assert.Equal(t, "Rádio", got.BudgetByMedia[0].Key)
	assert.True(t, got.BudgetByMedia[0].Amount.Equal(decimal.NewFromInt(3300)))

	require.Len(t, got.MediaByRegion, 3)
	assert.Equal(t, domain.RegionRF1, got.MediaByRegion[0].Region)
	assert.Equal(t, domain.MediaTelevision, got.MediaByRegion[0].Media)
	assert.Equal(t, domain.MediaRadio, got.MediaByRegion[1].Media)
	assert.Equal(t, 2, got.MediaByRegion[1].Count)
	assert.True(t, got.MediaByRegion[1].Budget.Equal(decimal.NewFromInt(3300)))
	assert.Equal(t, domain.RegionRF8, got.MediaByRegion[2].Region)
}

func TestBuildFiltered(t *testing.T) {
	got := Build(fixtures(), Filter{Clients: []string{"Saúde"}})
	assert.Equal(t, 2, got.TotalCampaigns)

	got = Build(fixtures(), Filter{Regions: []domain.Region{domain.RegionRF8}})
	assert.Equal(t, 1, got.TotalCampaigns)

	got = Build(fixtures(), Filter{Campaigns: []string{"Nenhuma"}})
	assert.Zero(t, got.TotalCampaigns)
	assert.True(t, got.TotalBudget.IsZero())
	assert.Zero(t, got.PunctualityRate)
	assert.Zero(t, got.AverageDuration)
}

func TestTeam(t *testing.T) {
	got := Team(fixtures())

	want := []TeamMember{
		{Responsible: "Ana", Active: 1, Total: 2, Punctuality: 50},
		{Responsible: "Bruno", Active: 1, Total: 1, Punctuality: 100},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Team() mismatch (-want +got):\n%s", diff)
	}
}

func TestDueOn(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "a", CampaignFields: domain.CampaignFields{Name: "Vacina", AgencyReturn: day(2024, 3, 4)}},
		{ID: "b", CampaignFields: domain.CampaignFields{Name: "Matrícula", ExpectedReportReceipt: day(2024, 3, 4)}},
		{ID: "c", CampaignFields: domain.CampaignFields{Name: "Dengue", AgencyReturn: day(2024, 3, 5)}},
		{ID: "d", CampaignFields: domain.CampaignFields{Name: "Ambos", AgencyReturn: day(2024, 3, 4), ExpectedReportReceipt: day(2024, 3, 4)}},
	}

	got := DueOn(campaigns, time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC))
	require.Len(t, got, 3)
	assert.Equal(t, "a-2024-03-04", got[0].ID)
	assert.Equal(t, "Prazo de retorno para a agência da campanha Vacina está próximo.", got[0].Message)
	assert.Equal(t, "b-2024-03-04", got[1].ID)
	assert.Contains(t, got[1].Message, "recebimento do relatório")
	assert.Equal(t, "d-2024-03-04", got[2].ID)

	assert.Empty(t, DueOn(campaigns, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)))
}
