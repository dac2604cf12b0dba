package models

// DashboardStats holds the derived counters shown on the brand dashboard.
// All counts are recomputed from already-loaded collections on every request.
type DashboardStats struct {
	ActiveOutreach      int   `json:"active_outreach" example:"12"`
	AttentionRequired   int   `json:"attention_required" example:"1"`
	SuccessfulDeals     int   `json:"successful_deals" example:"4"`
	UnreadNotifications int64 `json:"unread_notifications" example:"3"`
}

// CampaignSummary is the per-campaign aggregate row (total outreach, positive
// responses, negotiations, finalized deals, total deal value) computed
// gateway-side.
type CampaignSummary struct {
	CampaignID        string  `json:"campaign_id"`
	CampaignName      string  `json:"campaign_name"`
	TotalOutreach     int64   `json:"total_outreach"`
	PositiveResponses int64   `json:"positive_responses"`
	Negotiations      int64   `json:"negotiations"`
	FinalizedDeals    int64   `json:"finalized_deals"`
	TotalDealValue    float64 `json:"total_deal_value"`
}
