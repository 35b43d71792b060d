// Package report aggregates campaigns into the management overview and the
// per-responsible team statistics.
package report

import (
	"cmp"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
)

// Filter narrows the overview. Empty fields match everything; Regions
// matches when the campaign covers at least one selected region.
type Filter struct {
	Clients   []string
	Campaigns []string
	Regions   []domain.Region
}

func (f Filter) Match(c domain.Campaign) bool {
	if len(f.Clients) > 0 && !slices.Contains(f.Clients, c.Client) {
		return false
	}
	if len(f.Campaigns) > 0 && !slices.Contains(f.Campaigns, c.Name) {
		return false
	}
	if len(f.Regions) > 0 && !slices.ContainsFunc(c.Regions, func(r domain.Region) bool {
		return slices.Contains(f.Regions, r)
	}) {
		return false
	}
	return true
}

type Amount struct {
	Key    string          `json:"key"`
	Amount decimal.Decimal `json:"amount"`
}

type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Month counts campaigns by briefing month. Key is "YYYY-MM".
type Month struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Cell is one region and channel pair of the media by region matrix.
type Cell struct {
	Region domain.Region       `json:"region"`
	Media  domain.MediaChannel `json:"media"`
	Count  int                 `json:"count"`
	Budget decimal.Decimal     `json:"budget"`
}

type Overview struct {
	TotalCampaigns     int             `json:"total_campaigns"`
	TotalBudget        decimal.Decimal `json:"total_budget"`
	PunctualityRate    float64         `json:"punctuality_rate"`
	AverageDuration    float64         `json:"average_duration_days"`
	BudgetByAgency     []Amount        `json:"budget_by_agency"`
	StatusDistribution []Count         `json:"status_distribution"`
	CampaignsByMonth   []Month         `json:"campaigns_by_month"`
	MediaUsage         []Count         `json:"media_usage"`
	BudgetByMedia      []Amount        `json:"budget_by_media"`
	MediaByRegion      []Cell          `json:"media_by_region"`
	Team               []TeamMember    `json:"team"`
}

// Build aggregates the campaigns accepted by filter.
func Build(campaigns []domain.Campaign, filter Filter) Overview {
	var selected []domain.Campaign
	for _, c := range campaigns {
		if filter.Match(c) {
			selected = append(selected, c)
		}
	}

	out := Overview{
		TotalCampaigns: len(selected),
		TotalBudget:    decimal.Zero,
	}

	byAgency := map[string]decimal.Decimal{}
	byStatus := map[domain.Status]int{}
	byMonth := map[string]int{}
	mediaUsage := map[string]int{}
	byMedia := map[string]decimal.Decimal{}
	matrix := map[[2]string]*Cell{}

	var (
		withDeadline, onTime int
		withDuration, days   int
	)
	for _, c := range selected {
		budget := decimal.Zero
		if c.Budget != nil {
			budget = *c.Budget
		}
		out.TotalBudget = out.TotalBudget.Add(budget)
		byAgency[string(c.Agency)] = byAgency[string(c.Agency)].Add(budget)
		byStatus[c.Status]++

		if c.ReportReceived && c.ReportReceivedOn != nil && c.ExpectedReportReceipt != nil {
			withDeadline++
			if onTimeReport(c) {
				onTime++
			}
		}
		if c.ExhibitionStart != nil && c.ExhibitionEnd != nil {
			withDuration++
			days += deadline.DaysBetween(*c.ExhibitionStart, *c.ExhibitionEnd)
		}
		if c.BriefingDate != nil {
			byMonth[c.BriefingDate.Format("2006-01")]++
		}
		for _, m := range c.Media {
			mediaUsage[string(m)]++
		}
		for m, v := range c.BudgetByMedia {
			byMedia[string(m)] = byMedia[string(m)].Add(v)
		}
		for _, r := range c.Regions {
			for _, m := range c.Media {
				k := [2]string{string(r), string(m)}
				cell, ok := matrix[k]
				if !ok {
					cell = &Cell{Region: r, Media: m, Budget: decimal.Zero}
					matrix[k] = cell
				}
				cell.Count++
				cell.Budget = cell.Budget.Add(c.BudgetByMedia[m])
			}
		}
	}

	if withDeadline > 0 {
		out.PunctualityRate = float64(onTime) / float64(withDeadline) * 100
	}
	if withDuration > 0 {
		out.AverageDuration = float64(days) / float64(withDuration)
	}

	out.BudgetByAgency = amounts(byAgency)
	for _, s := range domain.StatusOrder {
		if n := byStatus[s]; n > 0 {
			out.StatusDistribution = append(out.StatusDistribution, Count{Key: string(s), Count: n})
		}
	}
	for k, n := range byMonth {
		out.CampaignsByMonth = append(out.CampaignsByMonth, Month{Key: k, Count: n})
	}
	slices.SortFunc(out.CampaignsByMonth, func(a, b Month) int { return cmp.Compare(a.Key, b.Key) })
	out.MediaUsage = counts(mediaUsage)
	out.BudgetByMedia = amounts(byMedia)

	for _, r := range domain.Regions {
		for _, m := range domain.MediaChannels {
			if cell, ok := matrix[[2]string{string(r), string(m)}]; ok {
				out.MediaByRegion = append(out.MediaByRegion, *cell)
			}
		}
	}
	out.Team = Team(selected)
	return out
}

// TeamMember summarises the workload of one responsible person.
// Punctuality is a whole percentage and is 100 when no report arrived yet.
type TeamMember struct {
	Responsible string  `json:"responsible"`
	Active      int     `json:"active_campaigns"`
	Total       int     `json:"total_campaigns"`
	Punctuality float64 `json:"punctuality"`
}

// Team returns one entry per responsible person, ordered by name.
func Team(campaigns []domain.Campaign) []TeamMember {
	type acc struct {
		member          TeamMember
		reports, onTime int
	}
	byName := map[string]*acc{}
	for _, c := range campaigns {
		if c.Responsible == "" {
			continue
		}
		a, ok := byName[c.Responsible]
		if !ok {
			a = &acc{member: TeamMember{Responsible: c.Responsible}}
			byName[c.Responsible] = a
		}
		a.member.Total++
		if c.Status.Active() {
			a.member.Active++
		}
		if c.ReportReceived {
			a.reports++
			if onTimeReport(c) {
				a.onTime++
			}
		}
	}

	out := make([]TeamMember, 0, len(byName))
	for _, a := range byName {
		a.member.Punctuality = 100
		if a.reports > 0 {
			a.member.Punctuality = math.Round(float64(a.onTime) / float64(a.reports) * 100)
		}
		out = append(out, a.member)
	}
	slices.SortFunc(out, func(a, b TeamMember) int { return cmp.Compare(a.Responsible, b.Responsible) })
	return out
}

func onTimeReport(c domain.Campaign) bool {
	return c.ReportReceivedOn != nil && c.ExpectedReportReceipt != nil &&
		!c.ReportReceivedOn.After(*c.ExpectedReportReceipt)
}

// amounts sorts descending by amount, then by key.
func amounts(m map[string]decimal.Decimal) []Amount {
	out := make([]Amount, 0, len(m))
	for k, v := range m {
		out = append(out, Amount{Key: k, Amount: v})
	}
	slices.SortFunc(out, func(a, b Amount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// counts sorts descending by count, then by key.
func counts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}
