package repository

import (
	"github.com/influmatch/influmatch-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create records a new payment row
func (r *PaymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetByDealID retrieves all payments for a deal, newest first
func (r *PaymentRepository) GetByDealID(dealID string) ([]*models.Payment, error) {
	var payments []*models.Payment
	err := r.db.Where("deal_id = ?", dealID).
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
