package models

import (
	"time"
)

// Direction of a communication log entry
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// CommunicationLog is an append-only record of one message/turn exchanged on
// an outreach. The only query pattern is ordering by timestamp (ascending for
// conversation replay, descending for recent-activity feeds).
type CommunicationLog struct {
	ID         string      `json:"id" gorm:"primaryKey;type:uuid"`
	OutreachID string      `json:"outreach_id" gorm:"not null;index;type:uuid"`
	Channel    string      `json:"channel" gorm:"type:varchar(20);not null;index"`
	Direction  string      `json:"direction" gorm:"type:varchar(10);not null"`
	Subject    string      `json:"subject" gorm:"type:varchar(500)"`
	Transcript string      `json:"transcript" gorm:"type:text"`
	AIModels   StringArray `json:"ai_models" gorm:"type:jsonb"`
	Metadata   JSON        `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt  time.Time   `json:"created_at" gorm:"index"`

	// Relationships
	Outreach OutreachActivity `json:"outreach,omitempty" gorm:"foreignKey:OutreachID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CommunicationLog model
func (CommunicationLog) TableName() string {
	return "communication_logs"
}

// CreateCommunicationLogRequest represents the request to append a log entry
// (used by the agent callback API)
type CreateCommunicationLogRequest struct {
	OutreachID string                 `json:"outreach_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Channel    string                 `json:"channel" binding:"required" example:"email"`
	Direction  string                 `json:"direction" binding:"required,oneof=inbound outbound" example:"outbound"`
	Subject    string                 `json:"subject,omitempty" example:"Collaboration with Glow Cosmetics"`
	Transcript string                 `json:"transcript" binding:"required"`
	AIModels   []string               `json:"ai_models,omitempty" example:"gpt-4o"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// CommunicationLogResponse represents the response for log operations
type CommunicationLogResponse struct {
	ID         string    `json:"id"`
	OutreachID string    `json:"outreach_id"`
	Channel    string    `json:"channel" example:"phone"`
	Direction  string    `json:"direction" example:"outbound"`
	Subject    string    `json:"subject,omitempty"`
	Transcript string    `json:"transcript"`
	AIModels   []string  `json:"ai_models,omitempty"`
	Metadata   JSON      `json:"metadata,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
