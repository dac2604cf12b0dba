package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

type CampaignService struct {
	campaignRepo *repository.CampaignRepository
	brandRepo    *repository.BrandRepository
}

func NewCampaignService(
	campaignRepo *repository.CampaignRepository,
	brandRepo *repository.BrandRepository,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		brandRepo:    brandRepo,
	}
}

// CreateCampaign creates a new campaign for a brand after validating the
// brief, platform set and date range. Validation failures happen before any
// persistence call.
func (s *CampaignService) CreateCampaign(brandID string, req *models.CreateCampaignRequest) (*models.CampaignResponse, error) {
	// Verify brand exists
	if _, err := s.brandRepo.GetByID(brandID); err != nil {
		return nil, errors.New("brand not found")
	}

	if err := validateCampaignInput(req.Brief, req.Platforms, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	currency := req.BudgetCurrency
	if currency == "" {
		currency = "INR"
	}

	campaign := &models.Campaign{
		BrandID:         brandID,
		Name:            req.Name,
		Niche:           req.Niche,
		Platforms:       models.StringArray(req.Platforms),
		TargetLocations: models.StringArray(req.TargetLocations),
		ContentFormats:  models.StringArray(req.ContentFormats),
		Brief:           req.Brief,
		BudgetAmount:    req.BudgetAmount,
		BudgetCurrency:  currency,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Status:          "Planning Phase",
	}

	if err := s.campaignRepo.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	return toCampaignResponse(campaign), nil
}

// GetCampaignsByBrand retrieves all campaigns for a brand, newest first
func (s *CampaignService) GetCampaignsByBrand(brandID string) ([]*models.CampaignResponse, error) {
	campaigns, err := s.campaignRepo.GetByBrandID(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}

	responses := make([]*models.CampaignResponse, len(campaigns))
	for i, campaign := range campaigns {
		responses[i] = toCampaignResponse(campaign)
	}
	return responses, nil
}

// GetCampaignByID retrieves a campaign by ID (brand must own it)
func (s *CampaignService) GetCampaignByID(brandID, campaignID string) (*models.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByBrandIDAndID(brandID, campaignID)
	if err != nil {
		return nil, errors.New("campaign not found")
	}
	return toCampaignResponse(campaign), nil
}

// UpdateCampaign updates a campaign (brand must own it)
func (s *CampaignService) UpdateCampaign(brandID, campaignID string, req *models.UpdateCampaignRequest) (*models.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByBrandIDAndID(brandID, campaignID)
	if err != nil {
		return nil, errors.New("campaign not found")
	}

	if err := validateCampaignInput(req.Brief, req.Platforms, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	campaign.Name = req.Name
	campaign.Niche = req.Niche
	campaign.Platforms = models.StringArray(req.Platforms)
	campaign.TargetLocations = models.StringArray(req.TargetLocations)
	campaign.ContentFormats = models.StringArray(req.ContentFormats)
	campaign.Brief = req.Brief
	campaign.BudgetAmount = req.BudgetAmount
	if req.BudgetCurrency != "" {
		campaign.BudgetCurrency = req.BudgetCurrency
	}
	campaign.StartDate = req.StartDate
	campaign.EndDate = req.EndDate

	if err := s.campaignRepo.Update(campaign); err != nil {
		return nil, fmt.Errorf("failed to update campaign: %w", err)
	}

	return toCampaignResponse(campaign), nil
}

// UpdateCampaignStatus applies a workflow-label change (pause/resume/archive)
func (s *CampaignService) UpdateCampaignStatus(brandID, campaignID, status string) (*models.CampaignResponse, error) {
	campaign, err := s.campaignRepo.GetByBrandIDAndID(brandID, campaignID)
	if err != nil {
		return nil, errors.New("campaign not found")
	}

	if err := s.campaignRepo.UpdateStatus(campaign.ID, status); err != nil {
		return nil, fmt.Errorf("failed to update campaign status: %w", err)
	}

	campaign.Status = status
	return toCampaignResponse(campaign), nil
}

// DeleteCampaign deletes a campaign (brand must own it). Dependent outreach
// and deals are left in place; nothing cascades.
func (s *CampaignService) DeleteCampaign(brandID, campaignID string) error {
	if _, err := s.campaignRepo.GetByBrandIDAndID(brandID, campaignID); err != nil {
		return errors.New("campaign not found")
	}
	return s.campaignRepo.DeleteByBrandIDAndID(brandID, campaignID)
}

// validateCampaignInput enforces the creation-time rules: brief long enough
// for AI matching, at least one platform, coherent date range.
func validateCampaignInput(brief string, platforms []string, startDate, endDate *time.Time) error {
	if len(brief) < models.MinBriefLength {
		return fmt.Errorf("campaign brief must be at least %d characters for AI matching", models.MinBriefLength)
	}
	if len(platforms) == 0 {
		return errors.New("at least one platform must be selected")
	}
	if startDate != nil && endDate != nil && endDate.Before(*startDate) {
		return errors.New("end date must not be before start date")
	}
	return nil
}

func toCampaignResponse(campaign *models.Campaign) *models.CampaignResponse {
	return &models.CampaignResponse{
		ID:              campaign.ID,
		BrandID:         campaign.BrandID,
		Name:            campaign.Name,
		Niche:           campaign.Niche,
		Platforms:       campaign.Platforms,
		TargetLocations: campaign.TargetLocations,
		ContentFormats:  campaign.ContentFormats,
		Brief:           campaign.Brief,
		BudgetAmount:    campaign.BudgetAmount,
		BudgetCurrency:  campaign.BudgetCurrency,
		StartDate:       campaign.StartDate,
		EndDate:         campaign.EndDate,
		Status:          campaign.Status,
		CreatedAt:       campaign.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       campaign.UpdatedAt.Format(time.RFC3339),
	}
}
