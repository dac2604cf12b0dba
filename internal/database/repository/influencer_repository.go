package repository

import (
	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type InfluencerRepository struct {
	db *gorm.DB
}

func NewInfluencerRepository(db *gorm.DB) *InfluencerRepository {
	return &InfluencerRepository{db: db}
}

// Create adds a new directory entry
func (r *InfluencerRepository) Create(influencer *models.Influencer) error {
	return r.db.Create(influencer).Error
}

// GetByID retrieves an influencer by ID with its platform accounts
func (r *InfluencerRepository) GetByID(id string) (*models.Influencer, error) {
	var influencer models.Influencer
	err := r.db.Preload("PlatformAccounts").First(&influencer, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &influencer, nil
}

// Search retrieves influencers matching the SQL-expressible filters, ordered
// by follower estimate descending. Absent filter fields impose no constraint.
// Set-membership filters (niche, content type) are applied by the service on
// top of this result.
func (r *InfluencerRepository) Search(filter *models.InfluencerFilter) ([]*models.Influencer, error) {
	query := r.db.Model(&models.Influencer{})

	if filter != nil {
		// "All India" is the no-restriction sentinel, not a substring match
		if filter.Location != "" && filter.Location != models.LocationAllIndia {
			query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
		}
		if filter.Availability != "" {
			query = query.Where("availability = ?", filter.Availability)
		}
		if filter.MinFollowers != nil {
			query = query.Where("followers >= ?", *filter.MinFollowers)
		}
		if filter.MaxFollowers != nil {
			query = query.Where("followers <= ?", *filter.MaxFollowers)
		}
	}

	var influencers []*models.Influencer
	err := query.Order("followers DESC").Find(&influencers).Error
	return influencers, err
}

// Update updates an influencer
func (r *InfluencerRepository) Update(influencer *models.Influencer) error {
	return r.db.Save(influencer).Error
}

// Delete removes a directory entry
func (r *InfluencerRepository) Delete(id string) error {
	return r.db.Delete(&models.Influencer{}, "id = ?", id).Error
}
