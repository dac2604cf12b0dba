package repository

import (
	"errors"

	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Create creates a new brand
func (r *BrandRepository) Create(brand *models.Brand) error {
	return r.db.Create(brand).Error
}

// GetByID retrieves a brand by ID
func (r *BrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.First(&brand, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

// GetByUserID retrieves the brand owned by a user. A missing row is a normal
// outcome (the brand is created lazily on first profile save), so it returns
// (nil, nil) rather than an error.
func (r *BrandRepository) GetByUserID(userID string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.Where("user_id = ?", userID).First(&brand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

// Update updates a brand
func (r *BrandRepository) Update(brand *models.Brand) error {
	return r.db.Save(brand).Error
}
