package models

import (
	"time"
)

// Influencer is a global directory entry, not owned by any brand
type Influencer struct {
	ID             string      `json:"id" gorm:"primaryKey;type:uuid"`
	Name           string      `json:"name" gorm:"type:varchar(255);not null"`
	Handle         string      `json:"handle" gorm:"type:varchar(100);not null;uniqueIndex"`
	Bio            string      `json:"bio" gorm:"type:text"`
	Location       string      `json:"location" gorm:"type:varchar(255);index"`
	Niches         StringArray `json:"niches" gorm:"type:jsonb"`
	ContentTypes   StringArray `json:"content_types" gorm:"type:jsonb"`
	Followers      int64       `json:"followers" gorm:"default:0;index"`
	EngagementRate float64     `json:"engagement_rate" gorm:"default:0"`
	Availability   string      `json:"availability" gorm:"type:varchar(50);default:'available';index"`
	Verified       bool        `json:"verified" gorm:"default:false;index"`
	Languages      StringArray `json:"languages" gorm:"type:jsonb"`
	// MatchScore is an opaque cached AI-matching blob; nothing in this service
	// computes it.
	MatchScore JSON      `json:"match_score,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	PlatformAccounts []PlatformAccount `json:"platform_accounts,omitempty" gorm:"foreignKey:InfluencerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Influencer model
func (Influencer) TableName() string {
	return "influencers"
}

// PlatformAccount holds the per-platform follower breakdown for an influencer
type PlatformAccount struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	InfluencerID   string    `json:"influencer_id" gorm:"not null;index;type:uuid"`
	Platform       string    `json:"platform" gorm:"type:varchar(50);not null;index"`
	Followers      int64     `json:"followers" gorm:"default:0"`
	EngagementRate float64   `json:"engagement_rate" gorm:"default:0"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Influencer Influencer `json:"influencer,omitempty" gorm:"foreignKey:InfluencerID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PlatformAccount model
func (PlatformAccount) TableName() string {
	return "platform_accounts"
}

// InfluencerFilter describes directory search parameters. Zero-valued fields
// impose no constraint; all present fields are combined with AND.
type InfluencerFilter struct {
	Niche        string `form:"niche"`
	ContentType  string `form:"content_type"`
	Location     string `form:"location"`
	Availability string `form:"availability"`
	MinFollowers *int64 `form:"min_followers"`
	MaxFollowers *int64 `form:"max_followers"`
}

// CreateInfluencerRequest represents the request to add a directory entry
type CreateInfluencerRequest struct {
	Name           string   `json:"name" binding:"required" example:"Ananya Kapoor"`
	Handle         string   `json:"handle" binding:"required" example:"@ananyastyle"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location" example:"Mumbai, Maharashtra"`
	Niches         []string `json:"niches" example:"Beauty,Fashion"`
	ContentTypes   []string `json:"content_types" example:"Reel,Story"`
	Followers      int64    `json:"followers" example:"250000"`
	EngagementRate float64  `json:"engagement_rate" example:"4.2"`
	Availability   string   `json:"availability" example:"available"`
	Languages      []string `json:"languages" example:"Hindi,English"`
}

// UpsertPlatformAccountRequest represents a per-platform follower breakdown entry
type UpsertPlatformAccountRequest struct {
	Platform       string  `json:"platform" binding:"required" example:"instagram"`
	Followers      int64   `json:"followers" binding:"min=0" example:"180000"`
	EngagementRate float64 `json:"engagement_rate" example:"4.8"`
}
