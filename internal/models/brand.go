package models

import (
	"time"
)

// Brand is the tenant entity: one per authenticated user, created lazily on
// the first profile save and never hard-deleted in-app.
type Brand struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID      string    `json:"user_id" gorm:"not null;uniqueIndex;type:uuid"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Website     string    `json:"website" gorm:"type:varchar(500)"`
	Description string    `json:"description" gorm:"type:text"`
	Industry    string    `json:"industry" gorm:"type:varchar(100)"`
	ContactName string    `json:"contact_name" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Brand model
func (Brand) TableName() string {
	return "brands"
}

// UpsertBrandRequest represents the request to create or update the brand profile
type UpsertBrandRequest struct {
	Name        string `json:"name" binding:"required" example:"Glow Cosmetics"`
	Website     string `json:"website" example:"https://glowcosmetics.in"`
	Description string `json:"description" example:"D2C skincare brand"`
	Industry    string `json:"industry" example:"Beauty & Personal Care"`
	ContactName string `json:"contact_name" example:"Priya Sharma"`
}

// BrandResponse represents the response for brand operations
type BrandResponse struct {
	ID          string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID      string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440001"`
	Name        string `json:"name" example:"Glow Cosmetics"`
	Website     string `json:"website" example:"https://glowcosmetics.in"`
	Description string `json:"description" example:"D2C skincare brand"`
	Industry    string `json:"industry" example:"Beauty & Personal Care"`
	ContactName string `json:"contact_name" example:"Priya Sharma"`
	CreatedAt   string `json:"created_at" example:"2025-01-09T10:30:00Z"`
	UpdatedAt   string `json:"updated_at" example:"2025-01-09T10:30:00Z"`
}
