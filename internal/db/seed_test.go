package db

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pauta-midia/internal/adapter/memory"
	"pauta-midia/internal/adapter/usecase"
	"pauta-midia/internal/core/domain"
)

func TestSeed(t *testing.T) {
	store := memory.NewStore()
	svc := usecase.NewCampaignUseCase(store, store, nil, nil, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	n, err := Seed(context.Background(), svc, now, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	views, err := svc.ListCampaigns(context.Background(), domain.CampaignFilter{})
	require.NoError(t, err)
	require.Len(t, views, 8)
	for _, v := range views {
		assert.NotNil(t, v.InternalAnalysisDeadline)
		assert.NotEmpty(t, v.Media)
		assert.Len(t, v.BudgetByMedia, len(v.Media))

		c, err := svc.GetCampaign(context.Background(), v.ID)
		require.NoError(t, err)
		require.Len(t, c.History, 1)
		assert.Equal(t, SeedActor, c.History[0].Actor)
	}

	n, err = Seed(context.Background(), svc, now, 8)
	require.NoError(t, err)
	assert.Zero(t, n)
}
