package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

func newCampaignService(db *gorm.DB) *CampaignService {
	return NewCampaignService(
		repository.NewCampaignRepository(db),
		repository.NewBrandRepository(db),
	)
}

func TestCreateCampaignAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	service := newCampaignService(db)

	resp, err := service.CreateCampaign(brand.ID, &models.CreateCampaignRequest{
		Name:         "Diwali Glow Launch",
		Niche:        "Beauty",
		Platforms:    []string{"Instagram", "YouTube"},
		Brief:        testBrief,
		BudgetAmount: 50000,
	})
	require.NoError(t, err)

	assert.Equal(t, "INR", resp.BudgetCurrency)
	assert.Equal(t, "Planning Phase", resp.Status)
	assert.Equal(t, brand.ID, resp.BrandID)
	assert.NotEmpty(t, resp.ID)
}

func TestCreateCampaignValidation(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	service := newCampaignService(db)

	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	tests := []struct {
		name    string
		req     *models.CreateCampaignRequest
		wantErr string
	}{
		{
			name: "brief too short",
			req: &models.CreateCampaignRequest{
				Name:         "Short",
				Platforms:    []string{"Instagram"},
				Brief:        strings.Repeat("x", models.MinBriefLength-1),
				BudgetAmount: 1000,
			},
			wantErr: "campaign brief must be at least",
		},
		{
			name: "no platforms",
			req: &models.CreateCampaignRequest{
				Name:         "No platforms",
				Brief:        testBrief,
				BudgetAmount: 1000,
			},
			wantErr: "at least one platform",
		},
		{
			name: "end date before start date",
			req: &models.CreateCampaignRequest{
				Name:         "Bad dates",
				Platforms:    []string{"Instagram"},
				Brief:        testBrief,
				BudgetAmount: 1000,
				StartDate:    &start,
				EndDate:      &end,
			},
			wantErr: "end date must not be before start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateCampaign(brand.ID, tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	// Nothing persisted on validation failure.
	var count int64
	require.NoError(t, db.Model(&models.Campaign{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateCampaignBriefAtExactMinimumPasses(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)

	_, err := newCampaignService(db).CreateCampaign(brand.ID, &models.CreateCampaignRequest{
		Name:         "Boundary",
		Platforms:    []string{"Instagram"},
		Brief:        strings.Repeat("x", models.MinBriefLength),
		BudgetAmount: 1000,
	})
	assert.NoError(t, err)
}

func TestCreateCampaignUnknownBrand(t *testing.T) {
	db := newTestDB(t)

	_, err := newCampaignService(db).CreateCampaign("00000000-0000-0000-0000-000000000000", &models.CreateCampaignRequest{
		Name:         "Orphan",
		Platforms:    []string{"Instagram"},
		Brief:        testBrief,
		BudgetAmount: 1000,
	})
	require.Error(t, err)
	assert.Equal(t, "brand not found", err.Error())
}

func TestGetCampaignByIDScopedToBrand(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	otherBrand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	service := newCampaignService(db)

	got, err := service.GetCampaignByID(brand.ID, campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.ID, got.ID)

	_, err = service.GetCampaignByID(otherBrand.ID, campaign.ID)
	require.Error(t, err)
	assert.Equal(t, "campaign not found", err.Error())
}

func TestUpdateCampaignStatus(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	service := newCampaignService(db)

	resp, err := service.UpdateCampaignStatus(brand.ID, campaign.ID, "paused")
	require.NoError(t, err)
	assert.Equal(t, "paused", resp.Status)

	var stored models.Campaign
	require.NoError(t, db.First(&stored, "id = ?", campaign.ID).Error)
	assert.Equal(t, "paused", stored.Status)
}

func TestDeleteCampaignLeavesOutreachInPlace(t *testing.T) {
	db := newTestDB(t)
	brand := seedBrand(t, db)
	campaign := seedCampaign(t, db, brand.ID)
	influencer := seedInfluencer(t, db, "Ananya Kapoor", 250000)
	outreach := seedOutreach(t, db, brand.ID, campaign.ID, influencer.ID, models.MethodEmail, models.StatusAIDrafting)
	service := newCampaignService(db)

	require.NoError(t, service.DeleteCampaign(brand.ID, campaign.ID))

	var campaignCount int64
	require.NoError(t, db.Model(&models.Campaign{}).Where("id = ?", campaign.ID).Count(&campaignCount).Error)
	assert.Zero(t, campaignCount)

	// Dependent outreach is intentionally not cascaded.
	var stored models.OutreachActivity
	assert.NoError(t, db.First(&stored, "id = ?", outreach.ID).Error)
}
