package models

import (
	"time"
)

// DealContract is the commercial agreement produced when an outreach
// concludes successfully. Conceptually 1:1 with its outreach; campaign,
// influencer and brand ids are denormalized for reporting queries.
type DealContract struct {
	ID           string `json:"id" gorm:"primaryKey;type:uuid"`
	OutreachID   string `json:"outreach_id" gorm:"not null;uniqueIndex;type:uuid"`
	CampaignID   string `json:"campaign_id" gorm:"not null;index;type:uuid"`
	InfluencerID string `json:"influencer_id" gorm:"not null;index;type:uuid"`
	BrandID      string `json:"brand_id" gorm:"not null;index;type:uuid"`

	AgreedRate   float64 `json:"agreed_rate" gorm:"default:0"`
	Currency     string  `json:"currency" gorm:"type:varchar(8);default:'INR'"`
	Deliverables string  `json:"deliverables" gorm:"type:text"`
	Timeline     string  `json:"timeline" gorm:"type:varchar(255)"`
	ContractDoc  string  `json:"contract_doc" gorm:"type:varchar(500)"`

	ESignProvider string `json:"esign_provider" gorm:"type:varchar(50)"`
	ESignStatus   string `json:"esign_status" gorm:"type:varchar(50)"`

	ContractSentAt   *time.Time `json:"contract_sent_at"`
	ContractSignedAt *time.Time `json:"contract_signed_at"`
	FinalizedAt      *time.Time `json:"finalized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Outreach OutreachActivity `json:"outreach,omitempty" gorm:"foreignKey:OutreachID;references:ID"`
	Payments []Payment        `json:"payments,omitempty" gorm:"foreignKey:DealID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the DealContract model
func (DealContract) TableName() string {
	return "deals_contracts"
}

// Payment belongs to a deal. Present in the schema only; no payment
// initiation logic exists in this service.
type Payment struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid"`
	DealID         string     `json:"deal_id" gorm:"not null;index;type:uuid"`
	Amount         float64    `json:"amount" gorm:"default:0"`
	Currency       string     `json:"currency" gorm:"type:varchar(8);default:'INR'"`
	Gateway        string     `json:"gateway" gorm:"type:varchar(50)"`
	DueDate        *time.Time `json:"due_date"`
	ProcessedAt    *time.Time `json:"processed_at"`
	TransactionRef string     `json:"transaction_ref" gorm:"type:varchar(255)"`
	Status         string     `json:"status" gorm:"type:varchar(50);default:'pending';index"`
	InvoiceRef     string     `json:"invoice_ref" gorm:"type:varchar(255)"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Deal DealContract `json:"deal,omitempty" gorm:"foreignKey:DealID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Payment model
func (Payment) TableName() string {
	return "payments"
}

// CreateDealRequest represents the request to record a concluded negotiation
type CreateDealRequest struct {
	OutreachID   string  `json:"outreach_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	AgreedRate   float64 `json:"agreed_rate" binding:"required,min=1" example:"35000"`
	Currency     string  `json:"currency" example:"INR"`
	Deliverables string  `json:"deliverables" example:"2 Reels + 3 Stories"`
	Timeline     string  `json:"timeline" example:"4 weeks"`
	ContractDoc  string  `json:"contract_doc,omitempty"`
}

// UpdateDealStatusRequest updates contract/e-sign progress fields. Only
// status fields change after creation.
type UpdateDealStatusRequest struct {
	ESignProvider    string     `json:"esign_provider,omitempty" example:"docusign"`
	ESignStatus      string     `json:"esign_status,omitempty" example:"sent"`
	ContractSentAt   *time.Time `json:"contract_sent_at,omitempty"`
	ContractSignedAt *time.Time `json:"contract_signed_at,omitempty"`
	FinalizedAt      *time.Time `json:"finalized_at,omitempty"`
}

// CreatePaymentRequest represents the request to record a payment row
type CreatePaymentRequest struct {
	Amount     float64    `json:"amount" binding:"required,min=1" example:"35000"`
	Currency   string     `json:"currency" example:"INR"`
	Gateway    string     `json:"gateway" example:"razorpay"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	InvoiceRef string     `json:"invoice_ref,omitempty"`
}
