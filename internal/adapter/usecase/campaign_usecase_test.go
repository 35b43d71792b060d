package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"pauta-midia/internal/adapter/memory"
	"pauta-midia/internal/core/audit"
	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/locale"
	"pauta-midia/internal/core/port"
	"pauta-midia/internal/core/port/mocks"
	"pauta-midia/internal/core/report"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var now = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func fixedClock() port.Clock {
	return port.ClockFunc(func() time.Time { return now })
}

func newService(t *testing.T) (*CampaignUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return NewCampaignUseCase(store, store, audit.New(locale.Default()), nil, fixedClock(), log), store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func input() port.CampaignInput {
	budget := decimal.NewFromInt(1500)
	return port.CampaignInput{
		Client:        "Secretaria da Saúde",
		Name:          "Vacinação",
		Agency:        domain.AgencyHOC,
		Responsible:   "Jéssica",
		ExhibitionEnd: "2024-01-01",
		AgencyReturn:  "2024-03-08",
		Budget:        &budget,
		Media:         []domain.MediaChannel{domain.MediaRadio},
		BudgetByMedia: map[domain.MediaChannel]decimal.Decimal{
			domain.MediaRadio:      decimal.NewFromInt(500),
			domain.MediaTelevision: decimal.NewFromInt(1000),
		},
	}
}

func TestCreateCampaign(t *testing.T) {
	svc, _ := newService(t)

	c, err := svc.CreateCampaign(context.Background(), " Ana ", input())
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.StatusPlanning, c.Status)
	assert.Equal(t, domain.ExhibitionPending, c.ExhibitionStatus)
	assert.Equal(t, day(2024, 1, 15), *c.ExpectedReportReceipt)
	assert.Equal(t, day(2024, 1, 18), *c.InternalAnalysisDeadline)
	assert.Equal(t, day(2024, 3, 13), *c.FeedbackToAgency)
	assert.Equal(t, map[domain.MediaChannel]decimal.Decimal{domain.MediaRadio: decimal.NewFromInt(500)}, c.BudgetByMedia)

	want := []domain.HistoryEntry{{Actor: "Ana", Timestamp: now, Changes: []string{domain.ChangeCreated}}}
	if diff := cmp.Diff(want, c.History); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateCampaignRejects(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.CreateCampaign(ctx, "  ", input())
	assert.ErrorIs(t, err, port.ErrActorRequired)

	in := input()
	in.Name = ""
	_, err = svc.CreateCampaign(ctx, "Ana", in)
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	in = input()
	in.Agency = "Desconhecida"
	in.Regions = []domain.Region{"RF 99"}
	_, err = svc.CreateCampaign(ctx, "Ana", in)
	require.ErrorIs(t, err, port.ErrInvalidCampaign)
	assert.Contains(t, err.Error(), "agencia")
	assert.Contains(t, err.Error(), "regioes_funcionais")
}

func TestUpdateCampaignWithoutChanges(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	const saves = 5
	var snapshot []domain.HistoryEntry
	for i := 0; i < saves; i++ {
		got, err := svc.UpdateCampaign(ctx, "Bruno", c.ID, input())
		require.NoError(t, err)
		require.Len(t, got.History, i+2)
		if snapshot != nil {
			if diff := cmp.Diff(snapshot, got.History[:len(snapshot)]); diff != "" {
				t.Fatalf("earlier entries changed (-want +got):\n%s", diff)
			}
		}
		last := got.History[len(got.History)-1]
		assert.Equal(t, []string{domain.ChangeNoChanges}, last.Changes)
		assert.Equal(t, "Bruno", last.Actor)
		snapshot = got.History
	}
}

func TestUpdateCampaignSingleField(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	in := input()
	in.Client = "Casa Civil"
	got, err := svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)

	last := got.History[len(got.History)-1]
	assert.Equal(t, []string{`'Órgão demandante' alterado de "Secretaria da Saúde" para "Casa Civil".`}, last.Changes)
}

func TestUpdateCampaignRecomputesDeadlines(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	in := input()
	in.ExhibitionEnd = "2024-12-27"
	got, err := svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)

	assert.Equal(t, day(2025, 1, 10), *got.ExpectedReportReceipt)
	assert.Equal(t, day(2025, 1, 15), *got.InternalAnalysisDeadline)
	last := got.History[len(got.History)-1]
	assert.Equal(t, []string{`'Término da exibição' alterado de "01/01/2024" para "27/12/2024".`}, last.Changes)

	in.ExhibitionEnd = ""
	got, err = svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)
	assert.Nil(t, got.ExpectedReportReceipt)
	assert.Nil(t, got.InternalAnalysisDeadline)
}

func TestUpdateCampaignDropsDeselectedBudget(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	in := input()
	in.Media = []domain.MediaChannel{domain.MediaRadio, domain.MediaTelevision}
	c, err := svc.CreateCampaign(ctx, "Ana", in)
	require.NoError(t, err)
	require.Len(t, c.BudgetByMedia, 2)

	in.Media = []domain.MediaChannel{domain.MediaRadio}
	got, err := svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)
	assert.Len(t, got.BudgetByMedia, 1)
	assert.Contains(t, got.BudgetByMedia, domain.MediaRadio)
}

func TestChangeStatus(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	got, err := svc.ChangeStatus(ctx, "Bruno", c.ID, domain.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	last := got.History[len(got.History)-1]
	assert.Equal(t, []string{`'Status' alterado de "Planejamento" para "Cancelada".`}, last.Changes)

	// Any status may follow any other.
	got, err = svc.ChangeStatus(ctx, "Bruno", c.ID, domain.StatusPlanning)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlanning, got.Status)

	_, err = svc.ChangeStatus(ctx, "Bruno", c.ID, "Arquivada")
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)
}

func TestRegisterReportSurvivesFormEdit(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	got, err := svc.RegisterReport(ctx, "Ana", c.ID, port.ReportReceipt{ReceivedOn: "2024-01-12", FileName: "relatorio.pdf"})
	require.NoError(t, err)
	assert.True(t, got.ReportReceived)
	assert.Equal(t, day(2024, 1, 12), *got.ReportReceivedOn)
	assert.Equal(t, "relatorio.pdf", got.ReportFile)
	assert.Len(t, got.History[len(got.History)-1].Changes, 3)

	in := input()
	in.ReportFile = "relatorio.pdf"
	got, err = svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)
	assert.True(t, got.ReportReceived)
	assert.Equal(t, day(2024, 1, 12), *got.ReportReceivedOn)
	assert.Equal(t, []string{domain.ChangeNoChanges}, got.History[len(got.History)-1].Changes)
}

func TestFormEditKeepsReportFile(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)
	_, err = svc.RegisterReport(ctx, "Ana", c.ID, port.ReportReceipt{FileName: "relatorio.pdf"})
	require.NoError(t, err)

	got, err := svc.UpdateCampaign(ctx, "Ana", c.ID, input())
	require.NoError(t, err)
	assert.Equal(t, "relatorio.pdf", got.ReportFile)
	assert.Equal(t, []string{domain.ChangeNoChanges}, got.History[len(got.History)-1].Changes)

	in := input()
	in.ReportFile = "relatorio_v2.pdf"
	got, err = svc.UpdateCampaign(ctx, "Ana", c.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "relatorio_v2.pdf", got.ReportFile)
	require.Len(t, got.History[len(got.History)-1].Changes, 1)
}

func TestRegisterReportDefaultsToToday(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	got, err := svc.RegisterReport(ctx, "Ana", c.ID, port.ReportReceipt{})
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 10), *got.ReportReceivedOn)
}

func TestMalformedDateIsLogged(t *testing.T) {
	var buf bytes.Buffer
	store := memory.NewStore()
	svc := NewCampaignUseCase(store, store, nil, nil, fixedClock(), slog.New(slog.NewTextHandler(&buf, nil)))

	in := input()
	in.ExhibitionEnd = "31/01/2024"
	c, err := svc.CreateCampaign(context.Background(), "Ana", in)
	require.NoError(t, err)

	assert.Nil(t, c.ExhibitionEnd)
	assert.Nil(t, c.ExpectedReportReceipt)
	assert.Contains(t, buf.String(), "malformed_date")
	assert.Contains(t, buf.String(), "periodo_fim")
}

func TestListCampaigns(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	a, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)
	other := input()
	other.Agency = domain.AgencyEscala
	other.ExhibitionEnd = ""
	_, err = svc.CreateCampaign(ctx, "Ana", other)
	require.NoError(t, err)

	views, err := svc.ListCampaigns(ctx, domain.CampaignFilter{Agency: domain.AgencyHOC})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, a.ID, views[0].ID)
	assert.Nil(t, views[0].History)

	// Internal analysis deadline 2024-01-18 seen from 2024-01-10.
	require.NotNil(t, views[0].Deadline)
	assert.Equal(t, deadline.LevelOnTrack, views[0].Deadline.Level)
	assert.Equal(t, 8, views[0].Deadline.DaysLeft)

	all, err := svc.ListCampaigns(ctx, domain.CampaignFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestHistoryAndDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	h, err := svc.History(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, h, 1)

	require.NoError(t, svc.DeleteCampaign(ctx, c.ID))
	_, err = svc.History(ctx, c.ID)
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	assert.ErrorIs(t, svc.DeleteCampaign(ctx, c.ID), port.ErrCampaignNotFound)
}

func TestConcurrentSaves(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	const n = 40
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status := domain.StatusOrder[i%len(domain.StatusOrder)]
			_, err := svc.ChangeStatus(ctx, fmt.Sprintf("user-%d", i), c.ID, status)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	stored, err := store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, stored.History, n+1)
	assert.Equal(t, []string{domain.ChangeCreated}, stored.History[0].Changes)
	for _, h := range stored.History[1:] {
		require.Len(t, h.Changes, 1)
	}
}

func TestUpdateCampaignWithMockRepository(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	docs := mocks.NewMockDocumentRepository(t)

	stored := domain.Campaign{ID: "c1", CampaignFields: domain.CampaignFields{
		Name:   "Vacinação",
		Status: domain.StatusInExecution,
	}}
	var appended domain.HistoryEntry
	repo.EXPECT().
		UpdateCampaign(mock.Anything, "c1", mock.Anything).
		Return(func(_ context.Context, _ string, mutate port.MutateFunc) (*domain.Campaign, error) {
			c := stored.Clone()
			entry, err := mutate(&c)
			if err != nil {
				return nil, err
			}
			appended = entry
			c.History = append(c.History, entry)
			return &c, nil
		}, nil)

	svc := NewCampaignUseCase(repo, docs, nil, nil, fixedClock(), nil)
	got, err := svc.ChangeStatus(context.Background(), "Ana", "c1", domain.StatusAwaitingReport)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAwaitingReport, got.Status)
	assert.Equal(t, now, got.UpdatedAt)
	assert.Equal(t, "Ana", appended.Actor)
	assert.Equal(t, []string{`'Status' alterado de "Em Execução" para "Aguardando Relatório".`}, appended.Changes)
}

func TestUpdateCampaignNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	docs := mocks.NewMockDocumentRepository(t)

	repo.EXPECT().
		UpdateCampaign(mock.Anything, "missing", mock.Anything).
		Return(nil, port.ErrCampaignNotFound)

	svc := NewCampaignUseCase(repo, docs, nil, nil, fixedClock(), nil)
	_, err := svc.UpdateCampaign(context.Background(), "Ana", "missing", input())
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
}

func TestDueNotificationsAndOverview(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	notes, err := svc.DueNotifications(ctx, day(2024, 3, 8))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, c.ID+"-2024-03-08", notes[0].ID)

	o, err := svc.Overview(ctx, report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, o.TotalCampaigns)
	assert.True(t, o.TotalBudget.Equal(decimal.NewFromInt(1500)))

	rows, err := svc.ReportCampaigns(ctx, report.Filter{Clients: []string{"Outro"}})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAddDocument(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	c, err := svc.CreateCampaign(ctx, "Ana", input())
	require.NoError(t, err)

	d, err := svc.AddDocument(ctx, "Ana", c.ID, port.DocumentInput{Name: "plano.pdf"})
	require.NoError(t, err)
	assert.Equal(t, domain.DocumentPDF, d.Type)
	assert.Equal(t, "Vacinação", d.CampaignName)

	_, err = svc.AddDocument(ctx, "Ana", c.ID, port.DocumentInput{Name: "plano.pdf"})
	assert.ErrorIs(t, err, port.ErrDocumentExists)
	_, err = svc.AddDocument(ctx, "Ana", "missing", port.DocumentInput{Name: "x.pdf"})
	assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	_, err = svc.AddDocument(ctx, "Ana", c.ID, port.DocumentInput{})
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	docs, err := svc.ListDocuments(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestEditImage(t *testing.T) {
	ctx := context.Background()
	img := port.Image{Data: []byte{1, 2, 3}, MIMEType: "image/png"}

	disabled := NewCampaignUseCase(nil, nil, nil, nil, fixedClock(), nil)
	_, err := disabled.EditImage(ctx, img, "remova o fundo")
	assert.ErrorIs(t, err, port.ErrImageEditorDisabled)

	editor := mocks.NewMockImageEditor(t)
	editor.EXPECT().
		EditImage(mock.Anything, img, "remova o fundo").
		Return(&port.Image{Data: []byte{9}, MIMEType: "image/png"}, nil)
	svc := NewCampaignUseCase(nil, nil, nil, editor, fixedClock(), nil)

	out, err := svc.EditImage(ctx, img, " remova o fundo ")
	require.NoError(t, err)
	assert.Equal(t, []byte{9}, out.Data)

	big := port.Image{Data: make([]byte, port.MaxImageSize+1), MIMEType: "image/png"}
	_, err = svc.EditImage(ctx, big, "x")
	assert.ErrorIs(t, err, port.ErrFileTooLarge)

	_, err = svc.EditImage(ctx, port.Image{Data: []byte{1}, MIMEType: "application/pdf"}, "x")
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = svc.EditImage(ctx, img, "")
	assert.ErrorIs(t, err, port.ErrInvalidInput)

	editor.EXPECT().
		EditImage(mock.Anything, img, "falha").
		Return(nil, errors.New("quota"))
	_, err = svc.EditImage(ctx, img, "falha")
	assert.Error(t, err)
}
