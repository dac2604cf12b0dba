package models

import (
	"time"
)

// MinBriefLength is the minimum campaign brief length required for AI
// matching eligibility. Checked at creation time only; existing rows are not
// re-validated.
const MinBriefLength = 100

// LocationAllIndia is the sentinel target location meaning no regional
// restriction.
const LocationAllIndia = "All India"

// Campaign represents an influencer-marketing campaign owned by a brand
type Campaign struct {
	ID              string      `json:"id" gorm:"primaryKey;type:uuid"`
	BrandID         string      `json:"brand_id" gorm:"not null;index;type:uuid"`
	Name            string      `json:"name" gorm:"type:varchar(255);not null"`
	Niche           string      `json:"niche" gorm:"type:varchar(100);index"`
	Platforms       StringArray `json:"platforms" gorm:"type:jsonb"`
	TargetLocations StringArray `json:"target_locations" gorm:"type:jsonb"`
	ContentFormats  StringArray `json:"content_formats" gorm:"type:jsonb"`
	Brief           string      `json:"brief" gorm:"type:text"`
	BudgetAmount    float64     `json:"budget_amount" gorm:"default:0"`
	BudgetCurrency  string      `json:"budget_currency" gorm:"type:varchar(8);default:'INR'"`
	StartDate       *time.Time  `json:"start_date" gorm:"index"`
	EndDate         *time.Time  `json:"end_date" gorm:"index"`
	// Status is a free-form workflow label ("Planning Phase", "active-outreach",
	// "paused", "archived"), distinct from the outreach status taxonomy.
	Status    string    `json:"status" gorm:"type:varchar(50);default:'Planning Phase';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships. Dependent outreach/deals are intentionally not cascaded.
	Brand Brand `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// CreateCampaignRequest represents the request to create a new campaign
type CreateCampaignRequest struct {
	Name            string     `json:"name" binding:"required" example:"Diwali Glow Launch"`
	Niche           string     `json:"niche" binding:"required" example:"Beauty"`
	Platforms       []string   `json:"platforms" binding:"required,min=1" example:"Instagram,YouTube"`
	TargetLocations []string   `json:"target_locations" example:"Mumbai,Delhi"`
	ContentFormats  []string   `json:"content_formats" example:"Reel,Story"`
	Brief           string     `json:"brief" binding:"required"`
	BudgetAmount    float64    `json:"budget_amount" binding:"required,min=1" example:"50000"`
	BudgetCurrency  string     `json:"budget_currency" example:"INR"`
	StartDate       *time.Time `json:"start_date" example:"2025-10-01T00:00:00Z"`
	EndDate         *time.Time `json:"end_date" example:"2025-11-15T00:00:00Z"`
}

// UpdateCampaignRequest represents the request to update a campaign
type UpdateCampaignRequest struct {
	Name            string     `json:"name" binding:"required" example:"Diwali Glow Launch"`
	Niche           string     `json:"niche" binding:"required" example:"Beauty"`
	Platforms       []string   `json:"platforms" binding:"required,min=1" example:"Instagram"`
	TargetLocations []string   `json:"target_locations" example:"All India"`
	ContentFormats  []string   `json:"content_formats" example:"Reel"`
	Brief           string     `json:"brief" binding:"required"`
	BudgetAmount    float64    `json:"budget_amount" binding:"required,min=1" example:"50000"`
	BudgetCurrency  string     `json:"budget_currency" example:"INR"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}

// UpdateCampaignStatusRequest represents a status-changing action
// (pause / resume / archive / activate outreach)
type UpdateCampaignStatusRequest struct {
	Status string `json:"status" binding:"required" example:"paused"`
}

// CampaignResponse represents the response for campaign operations
type CampaignResponse struct {
	ID              string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	BrandID         string     `json:"brand_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Name            string     `json:"name" example:"Diwali Glow Launch"`
	Niche           string     `json:"niche" example:"Beauty"`
	Platforms       []string   `json:"platforms" example:"Instagram,YouTube"`
	TargetLocations []string   `json:"target_locations" example:"Mumbai,Delhi"`
	ContentFormats  []string   `json:"content_formats" example:"Reel,Story"`
	Brief           string     `json:"brief"`
	BudgetAmount    float64    `json:"budget_amount" example:"50000"`
	BudgetCurrency  string     `json:"budget_currency" example:"INR"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Status          string     `json:"status" example:"Planning Phase"`
	CreatedAt       string     `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt       string     `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}
