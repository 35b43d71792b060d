package domain

import "time"

// Notification announces a deadline that falls on a given day.
type Notification struct {
	ID           string    `json:"id"`
	CampaignID   string    `json:"campaign_id"`
	CampaignName string    `json:"campaign_name"`
	Message      string    `json:"message"`
	Date         time.Time `json:"date"`
}
