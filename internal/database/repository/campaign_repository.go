package repository

import (
	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

// Create creates a new campaign
func (r *CampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// GetByID retrieves a campaign by ID
func (r *CampaignRepository) GetByID(id string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.First(&campaign, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// GetByBrandID retrieves all campaigns for a brand, newest first
func (r *CampaignRepository) GetByBrandID(brandID string) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&campaigns).Error
	return campaigns, err
}

// GetByBrandIDAndID retrieves a campaign by brand ID and campaign ID
func (r *CampaignRepository) GetByBrandIDAndID(brandID, campaignID string) (*models.Campaign, error) {
	var campaign models.Campaign
	err := r.db.Where("brand_id = ? AND id = ?", brandID, campaignID).
		First(&campaign).Error
	if err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Update updates a campaign
func (r *CampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// UpdateStatus sets only the workflow status label
func (r *CampaignRepository) UpdateStatus(campaignID, status string) error {
	return r.db.Model(&models.Campaign{}).Where("id = ?", campaignID).Update("status", status).Error
}

// DeleteByBrandIDAndID deletes a campaign by brand ID and campaign ID.
// Dependent outreach and deals are intentionally left in place.
func (r *CampaignRepository) DeleteByBrandIDAndID(brandID, campaignID string) error {
	return r.db.Where("brand_id = ? AND id = ?", brandID, campaignID).Delete(&models.Campaign{}).Error
}
