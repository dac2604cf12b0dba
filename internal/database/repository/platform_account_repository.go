package repository

import (
	"errors"

	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type PlatformAccountRepository struct {
	db *gorm.DB
}

func NewPlatformAccountRepository(db *gorm.DB) *PlatformAccountRepository {
	return &PlatformAccountRepository{db: db}
}

// GetByInfluencerID retrieves all platform accounts for an influencer
func (r *PlatformAccountRepository) GetByInfluencerID(influencerID string) ([]*models.PlatformAccount, error) {
	var accounts []*models.PlatformAccount
	err := r.db.Where("influencer_id = ?", influencerID).
		Order("followers DESC").
		Find(&accounts).Error
	return accounts, err
}

// Upsert creates or updates the breakdown for one (influencer, platform) pair
func (r *PlatformAccountRepository) Upsert(account *models.PlatformAccount) error {
	var existing models.PlatformAccount
	err := r.db.Where("influencer_id = ? AND platform = ?", account.InfluencerID, account.Platform).
		First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return r.db.Create(account).Error
		}
		return err
	}

	existing.Followers = account.Followers
	existing.EngagementRate = account.EngagementRate
	return r.db.Save(&existing).Error
}

// Delete removes a platform account
func (r *PlatformAccountRepository) Delete(id string) error {
	return r.db.Delete(&models.PlatformAccount{}, "id = ?", id).Error
}
