package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// SeedActor is recorded as the author of seeded campaigns.
const SeedActor = "Sistema"

var seedClients = []string{
	"Secretaria da Saúde",
	"Secretaria da Educação",
	"Banrisul",
	"Detran",
	"Secretaria de Turismo",
}

// Seed creates demo campaigns through the use case so they carry derived
// deadlines and a creation history entry. Nothing is created when at least
// one campaign exists. It returns the number of campaigns created.
func Seed(ctx context.Context, svc port.CampaignUseCase, now time.Time, count int) (int, error) {
	existing, err := svc.ListCampaigns(ctx, domain.CampaignFilter{})
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	r := rand.New(rand.NewSource(now.UnixNano()))
	for i := 1; i <= count; i++ {
		start := now.AddDate(0, 0, r.Intn(60)-30)
		end := start.AddDate(0, 0, 14+r.Intn(30))
		agencyReturn := end.AddDate(0, 0, r.Intn(20))

		media := pick(r, domain.MediaChannels, 1+r.Intn(3))
		byMedia := make(map[domain.MediaChannel]decimal.Decimal, len(media))
		total := decimal.Zero
		for _, m := range media {
			amount := decimal.NewFromInt(int64(5_000 + r.Intn(45_000)))
			byMedia[m] = amount
			total = total.Add(amount)
		}

		in := port.CampaignInput{
			Client:          seedClients[r.Intn(len(seedClients))],
			Name:            fmt.Sprintf("Campanha %d", i),
			Agency:          domain.Agencies[r.Intn(len(domain.Agencies))],
			Responsible:     []string{"Ana", "Bruno", "Carla"}[r.Intn(3)],
			Status:          domain.StatusOrder[r.Intn(len(domain.StatusOrder))],
			BriefingDate:    start.AddDate(0, 0, -10).Format(time.DateOnly),
			ExhibitionStart: start.Format(time.DateOnly),
			ExhibitionEnd:   end.Format(time.DateOnly),
			AgencyReturn:    agencyReturn.Format(time.DateOnly),
			Budget:          &total,
			Media:           media,
			BudgetByMedia:   byMedia,
			Regions:         pick(r, domain.Regions, 1+r.Intn(4)),
		}
		if _, err := svc.CreateCampaign(ctx, SeedActor, in); err != nil {
			return i - 1, fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}
	return count, nil
}

// pick returns n distinct values of all in random order.
func pick[T any](r *rand.Rand, all []T, n int) []T {
	n = min(n, len(all))
	out := make([]T, 0, n)
	for _, i := range r.Perm(len(all))[:n] {
		out = append(out, all[i])
	}
	return out
}
