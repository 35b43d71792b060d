package report

import (
	"fmt"
	"time"

	"pauta-midia/internal/core/deadline"
	"pauta-midia/internal/core/domain"
)

// DueOn lists the deadlines of campaigns that fall exactly on day: the
// expected agency return and the expected report receipt. IDs are
// "<campaign id>-<YYYY-MM-DD>"; when both deadlines of a campaign fall on the
// same day only the first is kept.
func DueOn(campaigns []domain.Campaign, day time.Time) []domain.Notification {
	day = deadline.Normalize(day)
	key := day.Format("2006-01-02")

	var out []domain.Notification
	for _, c := range campaigns {
		deadlines := []struct {
			date    *time.Time
			message string
		}{
			{c.AgencyReturn, fmt.Sprintf("Prazo de retorno para a agência da campanha %s está próximo.", c.Name)},
			{c.ExpectedReportReceipt, fmt.Sprintf("Prazo de recebimento do relatório da campanha %s está próximo.", c.Name)},
		}
		for _, d := range deadlines {
			if d.date == nil || !deadline.Normalize(*d.date).Equal(day) {
				continue
			}
			out = append(out, domain.Notification{
				ID:           c.ID + "-" + key,
				CampaignID:   c.ID,
				CampaignName: c.Name,
				Message:      d.message,
				Date:         day,
			})
			break
		}
	}
	return out
}
