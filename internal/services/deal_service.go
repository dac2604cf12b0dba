package services

import (
	"errors"
	"fmt"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

type DealService struct {
	dealRepo     *repository.DealRepository
	paymentRepo  *repository.PaymentRepository
	outreachRepo *repository.OutreachRepository
}

func NewDealService(
	dealRepo *repository.DealRepository,
	paymentRepo *repository.PaymentRepository,
	outreachRepo *repository.OutreachRepository,
) *DealService {
	return &DealService{
		dealRepo:     dealRepo,
		paymentRepo:  paymentRepo,
		outreachRepo: outreachRepo,
	}
}

// CreateDeal records a concluded negotiation. A deal is 1:1 with its
// outreach; campaign/influencer/brand ids are denormalized onto the row.
func (s *DealService) CreateDeal(brandID string, req *models.CreateDealRequest) (*models.DealContract, error) {
	outreach, err := s.outreachRepo.GetByBrandIDAndID(brandID, req.OutreachID)
	if err != nil {
		return nil, errors.New("outreach not found")
	}

	existing, err := s.dealRepo.GetByOutreachID(req.OutreachID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing deal: %w", err)
	}
	if existing != nil {
		return nil, errors.New("a deal already exists for this outreach")
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	deal := &models.DealContract{
		OutreachID:   outreach.ID,
		CampaignID:   outreach.CampaignID,
		InfluencerID: outreach.InfluencerID,
		BrandID:      outreach.BrandID,
		AgreedRate:   req.AgreedRate,
		Currency:     currency,
		Deliverables: req.Deliverables,
		Timeline:     req.Timeline,
		ContractDoc:  req.ContractDoc,
	}

	if err := s.dealRepo.Create(deal); err != nil {
		return nil, fmt.Errorf("failed to create deal: %w", err)
	}
	return deal, nil
}

// GetDealsByBrand retrieves all deals for a brand, newest first
func (s *DealService) GetDealsByBrand(brandID string) ([]*models.DealContract, error) {
	deals, err := s.dealRepo.GetByBrandID(brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get deals: %w", err)
	}
	return deals, nil
}

// GetDealByID retrieves a deal with its payments (brand must own it)
func (s *DealService) GetDealByID(brandID, dealID string) (*models.DealContract, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil || deal.BrandID != brandID {
		return nil, errors.New("deal not found")
	}
	return deal, nil
}

// UpdateDealStatus updates contract/e-sign progress fields. Commercial terms
// never change after creation.
func (s *DealService) UpdateDealStatus(brandID, dealID string, req *models.UpdateDealStatusRequest) (*models.DealContract, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil || deal.BrandID != brandID {
		return nil, errors.New("deal not found")
	}

	if req.ESignProvider != "" {
		deal.ESignProvider = req.ESignProvider
	}
	if req.ESignStatus != "" {
		deal.ESignStatus = req.ESignStatus
	}
	if req.ContractSentAt != nil {
		deal.ContractSentAt = req.ContractSentAt
	}
	if req.ContractSignedAt != nil {
		deal.ContractSignedAt = req.ContractSignedAt
	}
	if req.FinalizedAt != nil {
		deal.FinalizedAt = req.FinalizedAt
	}

	if err := s.dealRepo.Update(deal); err != nil {
		return nil, fmt.Errorf("failed to update deal: %w", err)
	}
	return deal, nil
}

// CreatePayment records a payment row against a deal
func (s *DealService) CreatePayment(brandID, dealID string, req *models.CreatePaymentRequest) (*models.Payment, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil || deal.BrandID != brandID {
		return nil, errors.New("deal not found")
	}

	currency := req.Currency
	if currency == "" {
		currency = deal.Currency
	}

	payment := &models.Payment{
		DealID:     deal.ID,
		Amount:     req.Amount,
		Currency:   currency,
		Gateway:    req.Gateway,
		DueDate:    req.DueDate,
		InvoiceRef: req.InvoiceRef,
		Status:     "pending",
	}

	if err := s.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// GetPayments retrieves the payments recorded against a deal
func (s *DealService) GetPayments(brandID, dealID string) ([]*models.Payment, error) {
	deal, err := s.dealRepo.GetByID(dealID)
	if err != nil || deal.BrandID != brandID {
		return nil, errors.New("deal not found")
	}

	payments, err := s.paymentRepo.GetByDealID(deal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	return payments, nil
}
