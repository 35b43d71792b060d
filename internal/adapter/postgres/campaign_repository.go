package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. History lives in the insert-only campaign_history table.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `
    id,
    cliente,
    campanha,
    agencia,
    atendimento_responsavel,
    status_plano,
    exhibition_status,
    data_entrada_pauta,
    periodo_inicio,
    periodo_fim,
    data_prevista_retorno_agencia,
    data_recebimento_relatorio,
    data_feedback_agencia,
    data_prevista_recebimento_relatorio,
    prazo_analise_interna,
    proa,
    briefing,
    orcamento::text,
    comentarios,
    observacoes_ajustes,
    comprovantes_sac_recebidos,
    relatorio_recebido,
    plano_midia_arquivo_nome,
    relatorio_arquivo_nome,
    presenca_em,
    orcamento_por_midia,
    regioes_funcionais,
    created_at,
    updated_at`

var insertColumns = strings.ReplaceAll(campaignColumns, "::text", "")

// querier is satisfied by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateCampaign inserts the campaign and its initial history in one
// transaction.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	args, err := campaignArgs(c)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO campaigns (`+insertColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18::numeric,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)`, args...)
	if err != nil {
		return err
	}
	for _, h := range c.History {
		if err = insertHistory(ctx, tx, c.ID, h); err != nil {
			return err
		}
	}
	return nil
}

// UpdateCampaign locks the campaign row with SELECT ... FOR UPDATE, runs
// mutate and writes the new field values plus one history row before
// committing. Concurrent saves of the same campaign wait on the row lock.
func (r *CampaignRepository) UpdateCampaign(ctx context.Context, id string, mutate port.MutateFunc) (_ *domain.Campaign, err error) {
	if !validID(id) {
		return nil, port.ErrCampaignNotFound
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	c, err := scanCampaign(tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id))
	if notFound(err) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.History, err = loadHistory(ctx, tx, id); err != nil {
		return nil, err
	}

	entry, err := mutate(&c)
	if err != nil {
		return nil, err
	}
	c.ID = id

	args, err := campaignArgs(c)
	if err != nil {
		return nil, err
	}
	// created_at is never rewritten; updated_at takes its place as $28.
	args = append(args[:27:27], c.UpdatedAt)
	_, err = tx.Exec(ctx, `UPDATE campaigns SET
    cliente = $2,
    campanha = $3,
    agencia = $4,
    atendimento_responsavel = $5,
    status_plano = $6,
    exhibition_status = $7,
    data_entrada_pauta = $8,
    periodo_inicio = $9,
    periodo_fim = $10,
    data_prevista_retorno_agencia = $11,
    data_recebimento_relatorio = $12,
    data_feedback_agencia = $13,
    data_prevista_recebimento_relatorio = $14,
    prazo_analise_interna = $15,
    proa = $16,
    briefing = $17,
    orcamento = $18::numeric,
    comentarios = $19,
    observacoes_ajustes = $20,
    comprovantes_sac_recebidos = $21,
    relatorio_recebido = $22,
    plano_midia_arquivo_nome = $23,
    relatorio_arquivo_nome = $24,
    presenca_em = $25,
    orcamento_por_midia = $26,
    regioes_funcionais = $27,
    updated_at = $28
WHERE id = $1`, args...)
	if err != nil {
		return nil, err
	}
	if err = insertHistory(ctx, tx, id, entry); err != nil {
		return nil, err
	}
	c.History = append(c.History, entry)
	return &c, nil
}

// GetCampaign returns a campaign with its history.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if !validID(id) {
		return nil, port.ErrCampaignNotFound
	}
	c, err := scanCampaign(r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if notFound(err) {
		return nil, port.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	if c.History, err = loadHistory(ctx, r.pool, id); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCampaigns returns every campaign, newest first, without history.
func (r *CampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// DeleteCampaign removes the campaign; history and documents go with it
// through ON DELETE CASCADE.
func (r *CampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	if !validID(id) {
		return port.ErrCampaignNotFound
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if notFound(err) {
		return port.ErrCampaignNotFound
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrCampaignNotFound
	}
	return nil
}

// validID reports whether id can match the UUID primary key. Anything else
// is an unknown campaign, never a query error.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// notFound reports a missing row, or an id PostgreSQL rejected as
// invalid_text_representation.
func notFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                       domain.Campaign
		budget                  *string
		media, byMedia, regions []byte
	)
	err := row.Scan(
		&c.ID,
		&c.Client,
		&c.Name,
		&c.Agency,
		&c.Responsible,
		&c.Status,
		&c.ExhibitionStatus,
		&c.BriefingDate,
		&c.ExhibitionStart,
		&c.ExhibitionEnd,
		&c.AgencyReturn,
		&c.ReportReceivedOn,
		&c.FeedbackToAgency,
		&c.ExpectedReportReceipt,
		&c.InternalAnalysisDeadline,
		&c.Proa,
		&c.Briefing,
		&budget,
		&c.Comments,
		&c.AdjustmentNotes,
		&c.SACProofReceived,
		&c.ReportReceived,
		&c.MediaPlanFile,
		&c.ReportFile,
		&media,
		&byMedia,
		&regions,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return c, err
	}
	if budget != nil {
		d, err := decimal.NewFromString(*budget)
		if err != nil {
			return c, fmt.Errorf("campaign %s: orcamento: %w", c.ID, err)
		}
		c.Budget = &d
	}
	if err = unmarshalColumn(media, &c.Media); err != nil {
		return c, fmt.Errorf("campaign %s: presenca_em: %w", c.ID, err)
	}
	if err = unmarshalColumn(byMedia, &c.BudgetByMedia); err != nil {
		return c, fmt.Errorf("campaign %s: orcamento_por_midia: %w", c.ID, err)
	}
	if err = unmarshalColumn(regions, &c.Regions); err != nil {
		return c, fmt.Errorf("campaign %s: regioes_funcionais: %w", c.ID, err)
	}
	return c, nil
}

// campaignArgs returns the column values in campaignColumns order.
func campaignArgs(c domain.Campaign) ([]any, error) {
	var budget *string
	if c.Budget != nil {
		s := c.Budget.String()
		budget = &s
	}
	media, err := marshalColumn(c.Media, "[]")
	if err != nil {
		return nil, err
	}
	byMedia, err := marshalColumn(c.BudgetByMedia, "{}")
	if err != nil {
		return nil, err
	}
	regions, err := marshalColumn(c.Regions, "[]")
	if err != nil {
		return nil, err
	}
	return []any{
		c.ID,
		c.Client,
		c.Name,
		string(c.Agency),
		c.Responsible,
		string(c.Status),
		string(c.ExhibitionStatus),
		c.BriefingDate,
		c.ExhibitionStart,
		c.ExhibitionEnd,
		c.AgencyReturn,
		c.ReportReceivedOn,
		c.FeedbackToAgency,
		c.ExpectedReportReceipt,
		c.InternalAnalysisDeadline,
		c.Proa,
		c.Briefing,
		budget,
		c.Comments,
		c.AdjustmentNotes,
		c.SACProofReceived,
		c.ReportReceived,
		c.MediaPlanFile,
		c.ReportFile,
		media,
		byMedia,
		regions,
		c.CreatedAt,
		c.UpdatedAt,
	}, nil
}

func insertHistory(ctx context.Context, q querier, campaignID string, h domain.HistoryEntry) error {
	changes, err := json.Marshal(h.Changes)
	if err != nil {
		return err
	}
	_, err = q.Exec(ctx, `INSERT INTO campaign_history (campaign_id, actor, changed_at, changes) VALUES ($1,$2,$3,$4)`,
		campaignID, h.Actor, h.Timestamp, changes)
	return err
}

func loadHistory(ctx context.Context, q querier, campaignID string) ([]domain.HistoryEntry, error) {
	rows, err := q.Query(ctx, `SELECT actor, changed_at, changes FROM campaign_history WHERE campaign_id = $1 ORDER BY id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HistoryEntry, error) {
		var (
			h   domain.HistoryEntry
			raw []byte
		)
		if err := row.Scan(&h.Actor, &h.Timestamp, &raw); err != nil {
			return h, err
		}
		return h, json.Unmarshal(raw, &h.Changes)
	})
}

// marshalColumn encodes a JSONB column value, writing empty for nil.
func marshalColumn(v any, empty string) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(b) == "null" {
		return []byte(empty), nil
	}
	return b, nil
}

func unmarshalColumn(raw []byte, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}
