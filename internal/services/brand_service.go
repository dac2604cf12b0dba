package services

import (
	"fmt"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

type BrandService struct {
	brandRepo *repository.BrandRepository
}

func NewBrandService(brandRepo *repository.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

// GetMyBrand retrieves the brand owned by a user. Returns (nil, nil) when the
// user has not saved a profile yet; only a gateway fault is an error.
func (s *BrandService) GetMyBrand(userID string) (*models.BrandResponse, error) {
	brand, err := s.brandRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	if brand == nil {
		return nil, nil
	}
	return toBrandResponse(brand), nil
}

// ResolveBrandID returns the id of the user's brand, or "" when none exists
func (s *BrandService) ResolveBrandID(userID string) (string, error) {
	brand, err := s.brandRepo.GetByUserID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve brand: %w", err)
	}
	if brand == nil {
		return "", nil
	}
	return brand.ID, nil
}

// UpsertMyBrand creates the brand on first profile save and updates it on
// subsequent saves
func (s *BrandService) UpsertMyBrand(userID string, req *models.UpsertBrandRequest) (*models.BrandResponse, error) {
	brand, err := s.brandRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	if brand == nil {
		brand = &models.Brand{
			UserID:      userID,
			Name:        req.Name,
			Website:     req.Website,
			Description: req.Description,
			Industry:    req.Industry,
			ContactName: req.ContactName,
		}
		if err := s.brandRepo.Create(brand); err != nil {
			return nil, fmt.Errorf("failed to create brand: %w", err)
		}
		return toBrandResponse(brand), nil
	}

	brand.Name = req.Name
	brand.Website = req.Website
	brand.Description = req.Description
	brand.Industry = req.Industry
	brand.ContactName = req.ContactName

	if err := s.brandRepo.Update(brand); err != nil {
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}
	return toBrandResponse(brand), nil
}

func toBrandResponse(brand *models.Brand) *models.BrandResponse {
	return &models.BrandResponse{
		ID:          brand.ID,
		UserID:      brand.UserID,
		Name:        brand.Name,
		Website:     brand.Website,
		Description: brand.Description,
		Industry:    brand.Industry,
		ContactName: brand.ContactName,
		CreatedAt:   brand.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   brand.UpdatedAt.Format(time.RFC3339),
	}
}
