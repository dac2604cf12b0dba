package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-backend/internal/models"
)

func TestCreateOutreachDefaultsToAIDrafting(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	service := newOutreachService(db)

	resp, err := service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Method:       "email",
		AgentName:    "Aria",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.StatusAIDrafting), resp.Status)
	assert.Equal(t, string(models.BucketActive), resp.StatusBucket)
	assert.Equal(t, "Aria", resp.AgentName)
	assert.False(t, resp.InitiatedAt.IsZero())
	assert.Equal(t, resp.InitiatedAt, resp.LastStatusUpdateAt)
}

func TestCreateOutreachRejectsDuplicateTuple(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	service := newOutreachService(db)

	first, err := service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Method:       "email",
		Status:       "Negotiating",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusNegotiating), first.Status)

	_, err = service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Method:       "email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "outreach already exists")
	assert.Contains(t, err.Error(), "via email")
	assert.Contains(t, err.Error(), "current status: Negotiating")

	// A different method for the same pair is a separate activity.
	_, err = service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Method:       "chat",
	})
	assert.NoError(t, err)
}

func TestCreateOutreachValidation(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	service := newOutreachService(db)

	tests := []struct {
		name    string
		brandID string
		req     *models.CreateOutreachRequest
		wantErr string
	}{
		{
			name:    "invalid method",
			brandID: brand.ID,
			req: &models.CreateOutreachRequest{
				CampaignID:   campaign.ID,
				InfluencerID: influencer.ID,
				Method:       "carrier-pigeon",
			},
			wantErr: "invalid outreach method",
		},
		{
			name:    "campaign owned by another brand",
			brandID: otherBrand.ID,
			req: &models.CreateOutreachRequest{
				CampaignID:   campaign.ID,
				InfluencerID: influencer.ID,
				Method:       "email",
			},
			wantErr: "campaign not found",
		},
		{
			name:    "influencer missing",
			brandID: brand.ID,
			req: &models.CreateOutreachRequest{
				CampaignID:   campaign.ID,
				InfluencerID: "00000000-0000-0000-0000-000000000000",
				Method:       "email",
			},
			wantErr: "influencer not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateOutreach(tt.brandID, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCreateOutreachPhoneMethodRunsSimulation(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	service := newOutreachService(db)

	resp, err := service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:     campaign.ID,
		InfluencerID:   influencer.ID,
		Method:         "phone",
		InfluencerName: "Ananya Kapoor",
		CampaignName:   "Diwali Glow Launch",
		BrandName:      "Glow Cosmetics",
	})
	require.NoError(t, err)

	// The synchronous simulation already moved the activity along.
	assert.Equal(t, string(models.StatusWaitingForResponse), resp.Status)

	var count int64
	require.NoError(t, db.Model(&models.CommunicationLog{}).Where("outreach_id = ?", resp.ID).Count(&count).Error)
	assert.EqualValues(t, 5, count)
}

func TestCreateOutreachPhoneWithoutNameSkipsSimulation(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	service := newOutreachService(db)

	resp, err := service.CreateOutreach(brand.ID, &models.CreateOutreachRequest{
		CampaignID:   campaign.ID,
		InfluencerID: influencer.ID,
		Method:       "phone",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusAIDrafting), resp.Status)

	var count int64
	require.NoError(t, db.Model(&models.CommunicationLog{}).Where("outreach_id = ?", resp.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateStatusStampsTimestampAndCanonicalizesLegacyLabel(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusWaitingForResponse)
	service := newOutreachService(db)

	before := outreach.LastStatusUpdateAt
	followUp := time.Now().Add(48 * time.Hour)

	resp, err := service.UpdateStatus(brand.ID, outreach.ID, &models.UpdateOutreachStatusRequest{
		Status:         "Response - In Negotiation",
		Notes:          "Rate card received",
		NextFollowUpAt: &followUp,
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.StatusNegotiating), resp.Status)
	assert.Equal(t, "Rate card received", resp.Notes)
	require.NotNil(t, resp.NextFollowUpAt)
	assert.False(t, resp.LastStatusUpdateAt.Before(before))
}

func TestUpdateStatusScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusAIDrafting)
	service := newOutreachService(db)

	_, err := service.UpdateStatus(otherBrand.ID, outreach.ID, &models.UpdateOutreachStatusRequest{
		Status: "Negotiating",
	})
	require.Error(t, err)
	assert.Equal(t, "outreach not found", err.Error())
}

func TestListOutreachFiltersAndOrder(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaignA := seedCampaign(t, db, brand.ID)
	campaignB := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	other := seedInfluencer(t, db, "Rohan Mehta", 80000)
	service := newOutreachService(db)

	base := time.Now().Add(-time.Hour)
	oldest := seedOutreach(t, db, brand.ID, campaignA.ID, influencer.ID, models.MethodEmail, models.StatusAIDrafting)
	middle := seedOutreach(t, db, brand.ID, campaignA.ID, other.ID, models.MethodPhone, models.StatusNegotiating)
	newest := seedOutreach(t, db, brand.ID, campaignB.ID, influencer.ID, models.MethodChat, models.StatusDealFinalized)
	seedOutreach(t, db, otherBrand.ID, seedCampaign(t, db, otherBrand.ID).ID, influencer.ID, models.MethodEmail, models.StatusAIDrafting)

	for i, o := range []*models.OutreachActivity{oldest, middle, newest} {
		require.NoError(t, db.Model(&models.OutreachActivity{}).Where("id = ?", o.ID).
			Update("last_status_update_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	all, err := service.ListOutreach(brand.ID, &models.OutreachFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3, "other brand's rows must not leak")
	assert.Equal(t, newest.ID, all[0].ID)
	assert.Equal(t, oldest.ID, all[2].ID)

	byCampaign, err := service.ListOutreach(brand.ID, &models.OutreachFilter{CampaignID: campaignA.ID})
	require.NoError(t, err)
	assert.Len(t, byCampaign, 2)

	combined, err := service.ListOutreach(brand.ID, &models.OutreachFilter{
		CampaignID: campaignA.ID,
		Method:     "phone",
	})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, middle.ID, combined[0].ID)

	// Status filtering accepts legacy labels too.
	byStatus, err := service.ListOutreach(brand.ID, &models.OutreachFilter{Status: "Response - In Negotiation"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, middle.ID, byStatus[0].ID)
}

func TestGetCommunicationLogsScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusAIDrafting)
	service := newOutreachService(db)

	_, err := service.AppendCommunicationLog(&models.CreateCommunicationLogRequest{
		OutreachID: outreach.ID,
		Channel:    "email",
		Direction:  models.DirectionOutbound,
		Subject:    "Introduction",
		Transcript: "Hi Ananya, we'd love to work with you.",
	})
	require.NoError(t, err)

	logs, err := service.GetCommunicationLogs(brand.ID, outreach.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "Introduction", logs[0].Subject)

	_, err = service.GetCommunicationLogs(otherBrand.ID, outreach.ID)
	require.Error(t, err)
	assert.Equal(t, "outreach not found", err.Error())
}

func TestAgentUpdateStatusIsNotBrandScoped(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusWaitingForResponse)
	service := newOutreachService(db)

	resp, err := service.AgentUpdateStatus(outreach.ID, &models.UpdateOutreachStatusRequest{
		Status: "Issue: AI Needs Human Help",
		Notes:  "Influencer asked to speak with a person",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusNeedsHumanHelp), resp.Status)
	assert.Equal(t, string(models.BucketAttention), resp.StatusBucket)

	_, err = service.AgentUpdateStatus("00000000-0000-0000-0000-000000000000", &models.UpdateOutreachStatusRequest{Status: "Negotiating"})
	require.Error(t, err)
	assert.Equal(t, "outreach not found", err.Error())
}

func TestUpdateStatusAcceptsUnknownLabel(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusWaitingForResponse)
	service := newOutreachService(db)

	// Last write wins: labels outside the known taxonomy are stored as-is
	// and fall into the catch-all bucket.
	resp, err := service.UpdateStatus(brand.ID, outreach.ID, &models.UpdateOutreachStatusRequest{
		Status: "Ghosted",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ghosted", resp.Status)
	assert.Equal(t, string(models.BucketOther), resp.StatusBucket)
	assert.Equal(t, "waiting", resp.BadgeVariant)
}

func TestAgentUpdateStatusRaisesAttentionNotification(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusWaitingForResponse)

	notificationService := newNotificationService(db)
	service := newOutreachService(db)
	service.AttachNotifications(notificationService)

	_, err := service.AgentUpdateStatus(outreach.ID, &models.UpdateOutreachStatusRequest{
		Status: string(models.StatusNegotiating),
	})
	require.NoError(t, err)

	// Only attention-bucket transitions raise a notification.
	notifications, err := notificationService.GetByBrand(brand.ID)
	require.NoError(t, err)
	assert.Empty(t, notifications)

	_, err = service.AgentUpdateStatus(outreach.ID, &models.UpdateOutreachStatusRequest{
		Status: string(models.StatusNeedsHumanHelp),
		Notes:  "Influencer asked to speak with a person",
	})
	require.NoError(t, err)

	notifications, err = notificationService.GetByBrand(brand.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Outreach needs your attention", notifications[0].Title)
	assert.Equal(t, "attention_required", notifications[0].Type)
	assert.Equal(t, "outreach", notifications[0].RelatedType)
	assert.Equal(t, outreach.ID, notifications[0].RelatedID)
}
