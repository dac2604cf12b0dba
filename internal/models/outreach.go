package models

import (
	"time"
)

// OutreachMethod is the communication channel of an outreach activity
type OutreachMethod string

const (
	MethodEmail OutreachMethod = "email"
	MethodPhone OutreachMethod = "phone"
	MethodChat  OutreachMethod = "chat"
)

// IsValid reports whether the method is one of the recognized channels
func (m OutreachMethod) IsValid() bool {
	switch m {
	case MethodEmail, MethodPhone, MethodChat:
		return true
	}
	return false
}

// OutreachActivity tracks one brand's attempt to engage one influencer for
// one campaign via one method. At most one row exists per
// (campaign, influencer, method, brand) tuple.
type OutreachActivity struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	CampaignID   string         `json:"campaign_id" gorm:"not null;index;type:uuid"`
	InfluencerID string         `json:"influencer_id" gorm:"not null;index;type:uuid"`
	BrandID      string         `json:"brand_id" gorm:"not null;index;type:uuid"`
	Method       OutreachMethod `json:"method" gorm:"type:varchar(10);not null;index"`
	AgentName    string         `json:"agent_name" gorm:"type:varchar(100)"`
	// Status transitions are not validated; last write wins. Categorization
	// into dashboard buckets is derived via OutreachStatus.Bucket.
	Status             OutreachStatus `json:"status" gorm:"type:varchar(64);not null;index"`
	InitiatedAt        time.Time      `json:"initiated_at" gorm:"not null"`
	LastStatusUpdateAt time.Time      `json:"last_status_update_at" gorm:"not null;index"`
	NextFollowUpAt     *time.Time     `json:"next_follow_up_at"`
	Notes              string         `json:"notes" gorm:"type:text"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`

	// Relationships
	Campaign   Campaign   `json:"campaign,omitempty" gorm:"foreignKey:CampaignID;references:ID"`
	Influencer Influencer `json:"influencer,omitempty" gorm:"foreignKey:InfluencerID;references:ID"`
	Brand      Brand      `json:"brand,omitempty" gorm:"foreignKey:BrandID;references:ID"`
}

// TableName specifies the table name for the OutreachActivity model
func (OutreachActivity) TableName() string {
	return "outreach_activities"
}

// CreateOutreachRequest represents the request to initiate outreach.
// The display names are only used for the phone-method call simulation.
type CreateOutreachRequest struct {
	CampaignID   string `json:"campaign_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	InfluencerID string `json:"influencer_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440001"`
	Method       string `json:"method" binding:"required,oneof=email phone chat" example:"phone"`
	AgentName    string `json:"agent_name" example:"Aria"`
	Status       string `json:"status" example:"AI Drafting"`

	InfluencerName string `json:"influencer_name,omitempty" example:"Ananya Kapoor"`
	CampaignName   string `json:"campaign_name,omitempty" example:"Diwali Glow Launch"`
	BrandName      string `json:"brand_name,omitempty" example:"Glow Cosmetics"`
}

// UpdateOutreachStatusRequest represents a status-transition action
type UpdateOutreachStatusRequest struct {
	Status         string     `json:"status" binding:"required" example:"Negotiating"`
	Notes          string     `json:"notes,omitempty"`
	NextFollowUpAt *time.Time `json:"next_follow_up_at,omitempty"`
}

// SimulateCallRequest carries the display names interpolated into the
// scripted call transcript
type SimulateCallRequest struct {
	InfluencerName string `json:"influencer_name" example:"Ananya Kapoor"`
	CampaignName   string `json:"campaign_name" example:"Diwali Glow Launch"`
	BrandName      string `json:"brand_name" example:"Glow Cosmetics"`
}

// OutreachFilter describes outreach list parameters. Zero-valued fields
// impose no constraint; present fields are combined with AND.
type OutreachFilter struct {
	CampaignID   string `form:"campaign_id"`
	InfluencerID string `form:"influencer_id"`
	Status       string `form:"status"`
	Method       string `form:"method"`
}

// OutreachResponse represents the response for outreach operations
type OutreachResponse struct {
	ID                 string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	CampaignID         string     `json:"campaign_id"`
	InfluencerID       string     `json:"influencer_id"`
	BrandID            string     `json:"brand_id"`
	Method             string     `json:"method" example:"phone"`
	AgentName          string     `json:"agent_name" example:"Aria"`
	Status             string     `json:"status" example:"Waiting for Response"`
	StatusBucket       string     `json:"status_bucket" example:"active"`
	BadgeVariant       string     `json:"badge_variant" example:"waiting"`
	InitiatedAt        time.Time  `json:"initiated_at"`
	LastStatusUpdateAt time.Time  `json:"last_status_update_at"`
	NextFollowUpAt     *time.Time `json:"next_follow_up_at,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}
