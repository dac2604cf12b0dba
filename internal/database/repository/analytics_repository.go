package repository

import (
	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

// AnalyticsRepository serves the gateway-side aggregate view: per-campaign
// outreach and deal rollups for a brand.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// CampaignSummaries computes the per-campaign counters in one grouped query:
// total outreach, positive responses, negotiations, finalized deals and total
// deal value.
func (r *AnalyticsRepository) CampaignSummaries(brandID string) ([]*models.CampaignSummary, error) {
	var summaries []*models.CampaignSummary
	err := r.db.Raw(`
		SELECT
			c.id AS campaign_id,
			c.name AS campaign_name,
			(SELECT COUNT(*) FROM outreach_activities o
				WHERE o.campaign_id = c.id) AS total_outreach,
			(SELECT COUNT(*) FROM outreach_activities o
				WHERE o.campaign_id = c.id
				AND o.status IN (?, ?)) AS positive_responses,
			(SELECT COUNT(*) FROM outreach_activities o
				WHERE o.campaign_id = c.id
				AND o.status = ?) AS negotiations,
			(SELECT COUNT(*) FROM outreach_activities o
				WHERE o.campaign_id = c.id
				AND o.status = ?) AS finalized_deals,
			COALESCE((SELECT SUM(d.agreed_rate) FROM deals_contracts d
				WHERE d.campaign_id = c.id), 0) AS total_deal_value
		FROM campaigns c
		WHERE c.brand_id = ?
		ORDER BY c.created_at DESC
	`,
		string(models.StatusPositiveInterest), string(models.StatusNegotiating),
		string(models.StatusNegotiating),
		string(models.StatusDealFinalized),
		brandID,
	).Scan(&summaries).Error
	return summaries, err
}
