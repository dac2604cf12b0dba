package repository

import (
	"errors"
	"time"

	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type OutreachRepository struct {
	db *gorm.DB
}

func NewOutreachRepository(db *gorm.DB) *OutreachRepository {
	return &OutreachRepository{db: db}
}

// Create creates a new outreach activity
func (r *OutreachRepository) Create(outreach *models.OutreachActivity) error {
	return r.db.Create(outreach).Error
}

// GetByID retrieves an outreach activity by ID
func (r *OutreachRepository) GetByID(id string) (*models.OutreachActivity, error) {
	var outreach models.OutreachActivity
	err := r.db.First(&outreach, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &outreach, nil
}

// GetByBrandIDAndID retrieves an outreach activity scoped to its brand
func (r *OutreachRepository) GetByBrandIDAndID(brandID, outreachID string) (*models.OutreachActivity, error) {
	var outreach models.OutreachActivity
	err := r.db.Where("brand_id = ? AND id = ?", brandID, outreachID).First(&outreach).Error
	if err != nil {
		return nil, err
	}
	return &outreach, nil
}

// FindByTuple looks up the outreach identified by the uniqueness tuple
// (campaign, influencer, method, brand). Returns (nil, nil) when absent.
func (r *OutreachRepository) FindByTuple(campaignID, influencerID string, method models.OutreachMethod, brandID string) (*models.OutreachActivity, error) {
	var outreach models.OutreachActivity
	err := r.db.Where(
		"campaign_id = ? AND influencer_id = ? AND method = ? AND brand_id = ?",
		campaignID, influencerID, method, brandID,
	).First(&outreach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &outreach, nil
}

// List retrieves outreach activities for a brand matching the filter, most
// recently updated first. Absent filter fields impose no constraint.
func (r *OutreachRepository) List(brandID string, filter *models.OutreachFilter) ([]*models.OutreachActivity, error) {
	query := r.db.Where("brand_id = ?", brandID)

	if filter != nil {
		if filter.CampaignID != "" {
			query = query.Where("campaign_id = ?", filter.CampaignID)
		}
		if filter.InfluencerID != "" {
			query = query.Where("influencer_id = ?", filter.InfluencerID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", string(models.ParseOutreachStatus(filter.Status)))
		}
		if filter.Method != "" {
			query = query.Where("method = ?", filter.Method)
		}
	}

	var activities []*models.OutreachActivity
	err := query.Order("last_status_update_at DESC").Find(&activities).Error
	return activities, err
}

// ListWithRelations is List with campaign and influencer rows preloaded,
// used where display names are needed (exports).
func (r *OutreachRepository) ListWithRelations(brandID string, filter *models.OutreachFilter) ([]*models.OutreachActivity, error) {
	query := r.db.Preload("Campaign").Preload("Influencer").Where("brand_id = ?", brandID)

	if filter != nil {
		if filter.CampaignID != "" {
			query = query.Where("campaign_id = ?", filter.CampaignID)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", string(models.ParseOutreachStatus(filter.Status)))
		}
		if filter.Method != "" {
			query = query.Where("method = ?", filter.Method)
		}
	}

	var activities []*models.OutreachActivity
	err := query.Order("last_status_update_at DESC").Find(&activities).Error
	return activities, err
}

// UpdateStatus applies a status transition. Every update stamps
// last_status_update_at so it never falls behind initiated_at.
func (r *OutreachRepository) UpdateStatus(id string, status models.OutreachStatus, notes string, nextFollowUpAt *time.Time) error {
	updates := map[string]interface{}{
		"status":                string(status),
		"last_status_update_at": time.Now(),
	}
	if notes != "" {
		updates["notes"] = notes
	}
	if nextFollowUpAt != nil {
		updates["next_follow_up_at"] = nextFollowUpAt
	}
	return r.db.Model(&models.OutreachActivity{}).Where("id = ?", id).Updates(updates).Error
}
