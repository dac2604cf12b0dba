package repository

import (
	"errors"

	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type DealRepository struct {
	db *gorm.DB
}

func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// Create records a new deal contract
func (r *DealRepository) Create(deal *models.DealContract) error {
	return r.db.Create(deal).Error
}

// GetByID retrieves a deal by ID with its payments
func (r *DealRepository) GetByID(id string) (*models.DealContract, error) {
	var deal models.DealContract
	err := r.db.Preload("Payments").First(&deal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// GetByOutreachID retrieves the deal attached to an outreach, if any.
// Returns (nil, nil) when absent.
func (r *DealRepository) GetByOutreachID(outreachID string) (*models.DealContract, error) {
	var deal models.DealContract
	err := r.db.Where("outreach_id = ?", outreachID).First(&deal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deal, nil
}

// GetByBrandID retrieves all deals for a brand, newest first
func (r *DealRepository) GetByBrandID(brandID string) ([]*models.DealContract, error) {
	var deals []*models.DealContract
	err := r.db.Where("brand_id = ?", brandID).
		Order("created_at DESC").
		Find(&deals).Error
	return deals, err
}

// Update updates a deal
func (r *DealRepository) Update(deal *models.DealContract) error {
	return r.db.Save(deal).Error
}
