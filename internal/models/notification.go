package models

import (
	"time"
)

// Notification is a brand-scoped inbox entry. Rows are created by external
// producers (agents, pipelines) via the notifications queue; this service
// consumes, lists and marks them read.
type Notification struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	BrandID     string     `json:"brand_id" gorm:"not null;index;type:uuid"`
	Title       string     `json:"title" gorm:"type:varchar(255);not null"`
	Message     string     `json:"message" gorm:"type:text;not null"`
	Type        string     `json:"type" gorm:"type:varchar(50);index"`
	RelatedType string     `json:"related_type,omitempty" gorm:"type:varchar(50)"`
	RelatedID   string     `json:"related_id,omitempty" gorm:"type:uuid"`
	Read        bool       `json:"read" gorm:"default:false;index"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"index"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}

// NotificationEvent is the JSON payload consumed from the notifications queue
type NotificationEvent struct {
	BrandID     string `json:"brand_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Title       string `json:"title" binding:"required" example:"Positive response received"`
	Message     string `json:"message" binding:"required" example:"Ananya Kapoor replied with interest"`
	Type        string `json:"type" example:"outreach_update"`
	RelatedType string `json:"related_type,omitempty" example:"outreach"`
	RelatedID   string `json:"related_id,omitempty"`
}

// UnreadCountResponse represents the unread-notification counter
type UnreadCountResponse struct {
	Unread int64 `json:"unread" example:"3"`
}
