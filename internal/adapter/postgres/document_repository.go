package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

const (
	uniqueViolation           = "23505"
	foreignKeyViolation       = "23503"
	invalidTextRepresentation = "22P02"
)

// DocumentRepository implements port.DocumentRepository using pgxpool.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

var _ port.DocumentRepository = (*DocumentRepository)(nil)

func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

func (r *DocumentRepository) AddDocument(ctx context.Context, d domain.Document) error {
	if !validID(d.CampaignID) {
		return port.ErrCampaignNotFound
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO documents (id, campaign_id, name, type, url, uploaded_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		d.ID, d.CampaignID, d.Name, string(d.Type), d.URL, d.UploadedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return port.ErrDocumentExists
		case foreignKeyViolation, invalidTextRepresentation:
			return port.ErrCampaignNotFound
		}
	}
	return err
}

// ListDocuments returns documents newest first. An empty campaignID lists
// the documents of every campaign; an id that is not a UUID has none.
func (r *DocumentRepository) ListDocuments(ctx context.Context, campaignID string) ([]domain.Document, error) {
	if campaignID != "" && !validID(campaignID) {
		return []domain.Document{}, nil
	}
	query := `
        SELECT d.id, d.campaign_id, c.campanha, d.name, d.type, d.url, d.uploaded_at
        FROM documents d
        JOIN campaigns c ON c.id = d.campaign_id`
	var args []any
	if campaignID != "" {
		query += ` WHERE d.campaign_id = $1`
		args = append(args, campaignID)
	}
	query += ` ORDER BY d.uploaded_at DESC, d.id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Document, error) {
		var d domain.Document
		err := row.Scan(&d.ID, &d.CampaignID, &d.CampaignName, &d.Name, &d.Type, &d.URL, &d.UploadedAt)
		return d, err
	})
}
