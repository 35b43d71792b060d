package port

import (
	"context"

	"pauta-midia/internal/core/domain"
)

// MutateFunc edits a loaded campaign in place and returns the history entry
// describing the edit. Returning an error aborts the save.
type MutateFunc func(c *domain.Campaign) (domain.HistoryEntry, error)

// CampaignRepository defines the persistence layer for campaigns. It is an
// outbound port in hexagonal architecture. Implementations must be
// concurrency-safe and must never modify or reorder stored history entries.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign together with its initial history.
	CreateCampaign(ctx context.Context, c domain.Campaign) error
	// UpdateCampaign loads the campaign, applies mutate and persists the
	// result with the returned entry appended to the history. Calls for the
	// same id are serialized. ErrCampaignNotFound is returned for unknown ids.
	UpdateCampaign(ctx context.Context, id string, mutate MutateFunc) (*domain.Campaign, error)
	// GetCampaign returns a campaign with its full history.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListCampaigns returns every campaign without history, newest first.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	// DeleteCampaign removes a campaign, its history and its documents.
	DeleteCampaign(ctx context.Context, id string) error
}

// DocumentRepository stores document metadata linked to campaigns.
type DocumentRepository interface {
	// AddDocument stores d. ErrDocumentExists is returned when the campaign
	// already has a document with the same name.
	AddDocument(ctx context.Context, d domain.Document) error
	// ListDocuments returns the documents of one campaign, or of every
	// campaign when campaignID is empty, newest first.
	ListDocuments(ctx context.Context, campaignID string) ([]domain.Document, error)
}
