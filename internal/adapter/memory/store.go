// Package memory is an in-process implementation of the campaign and
// document repositories. It backs the "memory" storage driver and the use
// case tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

type Store struct {
	mu sync.RWMutex

	campaigns map[string]domain.Campaign
	documents map[string]domain.Document
}

var (
	_ port.CampaignRepository = (*Store)(nil)
	_ port.DocumentRepository = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		campaigns: make(map[string]domain.Campaign),
		documents: make(map[string]domain.Document),
	}
}

func (s *Store) CreateCampaign(_ context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.TrimSpace(c.ID)
	if id == "" {
		return port.ErrInvalidCampaign
	}
	if _, exists := s.campaigns[id]; exists {
		return fmt.Errorf("campaign %s already exists: %w", id, port.ErrInvalidCampaign)
	}
	s.campaigns[id] = c.Clone()
	return nil
}

// UpdateCampaign holds the store lock for the whole load, mutate and write
// sequence, so concurrent saves never interleave.
func (s *Store) UpdateCampaign(_ context.Context, id string, mutate port.MutateFunc) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.campaigns[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	working := stored.Clone()
	entry, err := mutate(&working)
	if err != nil {
		return nil, err
	}
	working.ID = stored.ID
	working.CreatedAt = stored.CreatedAt
	// Earlier entries are taken from the stored copy, never from the
	// mutated one.
	working.History = append(stored.Clone().History, entry.Clone())
	s.campaigns[id] = working

	out := working.Clone()
	return &out, nil
}

func (s *Store) GetCampaign(_ context.Context, id string) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, port.ErrCampaignNotFound
	}
	out := c.Clone()
	return &out, nil
}

func (s *Store) ListCampaigns(_ context.Context) ([]domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Campaign, 0, len(s.campaigns))
	for _, c := range s.campaigns {
		c = c.Clone()
		c.History = nil
		items = append(items, c)
	}
	slices.SortFunc(items, func(a, b domain.Campaign) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}

func (s *Store) DeleteCampaign(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[id]; !ok {
		return port.ErrCampaignNotFound
	}
	delete(s.campaigns, id)
	for docID, d := range s.documents {
		if d.CampaignID == id {
			delete(s.documents, docID)
		}
	}
	return nil
}

func (s *Store) AddDocument(_ context.Context, d domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.campaigns[d.CampaignID]; !ok {
		return port.ErrCampaignNotFound
	}
	for _, existing := range s.documents {
		if existing.CampaignID == d.CampaignID && existing.Name == d.Name {
			return port.ErrDocumentExists
		}
	}
	s.documents[d.ID] = d
	return nil
}

func (s *Store) ListDocuments(_ context.Context, campaignID string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.Document, 0)
	for _, d := range s.documents {
		if campaignID == "" || d.CampaignID == campaignID {
			items = append(items, d)
		}
	}
	slices.SortFunc(items, func(a, b domain.Document) int {
		if c := b.UploadedAt.Compare(a.UploadedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return items, nil
}
