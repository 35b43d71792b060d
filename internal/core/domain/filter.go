package domain

import (
	"slices"
	"time"
)

// CampaignFilter describes the dashboard filter panel. Empty fields match
// everything. Statuses must contain the campaign status; Media and Regions
// match when at least one selected value is present on the campaign.
type CampaignFilter struct {
	Agency      Agency
	Responsible string
	Client      string
	From        *time.Time
	To          *time.Time
	Statuses    []Status
	Media       []MediaChannel
	Regions     []Region
}

// Match reports whether c satisfies every criterion of the filter. A bound
// on the exhibition period excludes campaigns without the matching date.
func (f CampaignFilter) Match(c Campaign) bool {
	if f.Agency != "" && c.Agency != f.Agency {
		return false
	}
	if f.Responsible != "" && c.Responsible != f.Responsible {
		return false
	}
	if f.Client != "" && c.Client != f.Client {
		return false
	}
	if f.From != nil && (c.ExhibitionStart == nil || c.ExhibitionStart.Before(*f.From)) {
		return false
	}
	if f.To != nil && (c.ExhibitionEnd == nil || c.ExhibitionEnd.After(*f.To)) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, c.Status) {
		return false
	}
	if len(f.Media) > 0 && !overlaps(f.Media, c.Media) {
		return false
	}
	if len(f.Regions) > 0 && !overlaps(f.Regions, c.Regions) {
		return false
	}
	return true
}

func overlaps[T comparable](want, have []T) bool {
	for _, v := range want {
		if slices.Contains(have, v) {
			return true
		}
	}
	return false
}
