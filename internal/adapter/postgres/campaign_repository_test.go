package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

func TestCampaignArgsMatchColumns(t *testing.T) {
	budget := decimal.RequireFromString("1500.50")
	args, err := campaignArgs(domain.Campaign{
		ID: "c1",
		CampaignFields: domain.CampaignFields{
			Budget: &budget,
			Media:  []domain.MediaChannel{domain.MediaRadio},
		},
	})
	require.NoError(t, err)

	columns := strings.Split(insertColumns, ",")
	assert.Len(t, args, len(columns))
	assert.NotContains(t, insertColumns, "::")

	b, ok := args[17].(*string)
	require.True(t, ok)
	assert.Equal(t, "1500.5", *b)
	assert.Equal(t, `["Rádio"]`, string(args[24].([]byte)))
	assert.Equal(t, `{}`, string(args[25].([]byte)))
	assert.Equal(t, `[]`, string(args[26].([]byte)))
}

func TestCampaignArgsNilBudget(t *testing.T) {
	args, err := campaignArgs(domain.Campaign{ID: "c1"})
	require.NoError(t, err)
	assert.Nil(t, args[17].(*string))
}

func TestUnmarshalColumn(t *testing.T) {
	var m map[domain.MediaChannel]decimal.Decimal
	require.NoError(t, unmarshalColumn([]byte(`{"Rádio":"500.25"}`), &m))
	assert.True(t, m[domain.MediaRadio].Equal(decimal.RequireFromString("500.25")))

	var regions []domain.Region
	require.NoError(t, unmarshalColumn(nil, &regions))
	assert.Nil(t, regions)
}

// Ids that cannot be UUIDs are answered without touching the pool, which is
// nil here.
func TestMalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	campaigns := &CampaignRepository{}
	documents := &DocumentRepository{}

	for _, id := range []string{"not-a-uuid", "123", ""} {
		t.Run(id, func(t *testing.T) {
			_, err := campaigns.GetCampaign(ctx, id)
			assert.ErrorIs(t, err, port.ErrCampaignNotFound)

			_, err = campaigns.UpdateCampaign(ctx, id, func(*domain.Campaign) (domain.HistoryEntry, error) {
				t.Fatal("mutate must not run")
				return domain.HistoryEntry{}, nil
			})
			assert.ErrorIs(t, err, port.ErrCampaignNotFound)

			assert.ErrorIs(t, campaigns.DeleteCampaign(ctx, id), port.ErrCampaignNotFound)
			assert.ErrorIs(t, documents.AddDocument(ctx, domain.Document{CampaignID: id, Name: "a.pdf"}), port.ErrCampaignNotFound)
		})
	}

	docs, err := documents.ListDocuments(ctx, "not-a-uuid")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestNotFound(t *testing.T) {
	assert.True(t, notFound(pgx.ErrNoRows))
	assert.True(t, notFound(fmt.Errorf("scan: %w", &pgconn.PgError{Code: invalidTextRepresentation})))
	assert.False(t, notFound(&pgconn.PgError{Code: uniqueViolation}))
	assert.False(t, notFound(nil))
}
