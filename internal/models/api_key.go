package models

import (
	"time"
)

// APIKey authenticates external AI agents calling back into the agent API
// (communication-log ingest, status updates). One key per user.
type APIKey struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	Key        string     `json:"key" gorm:"type:varchar(255);not null;unique;index"`
	UserID     string     `json:"user_id" gorm:"not null;index;type:uuid"`
	IsActive   bool       `json:"is_active" gorm:"default:true;index"`
	LastUsedAt *time.Time `json:"last_used_at"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the APIKey model
func (APIKey) TableName() string {
	return "api_keys"
}
