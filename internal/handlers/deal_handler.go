package handlers

import (
	"net/http"
	"strings"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/influmatch/influmatch-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DealHandler struct {
	dealService  *services.DealService
	brandService *services.BrandService
}

func NewDealHandler(db *gorm.DB) *DealHandler {
	dealRepo := repository.NewDealRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	outreachRepo := repository.NewOutreachRepository(db)
	brandRepo := repository.NewBrandRepository(db)

	return &DealHandler{
		dealService:  services.NewDealService(dealRepo, paymentRepo, outreachRepo),
		brandService: services.NewBrandService(brandRepo),
	}
}

// CreateDeal godoc
// @Summary Record a deal
// @Description Record a concluded negotiation for an outreach. A deal is 1:1 with its outreach.
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateDealRequest true "Create deal request"
// @Success 201 {object} models.DealContract
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	var req models.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	deal, err := h.dealService.CreateDeal(brandID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, deal)
}

// GetMyDeals godoc
// @Summary List deals
// @Description List all deals of the authenticated user's brand
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DealContract
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals [get]
func (h *DealHandler) GetMyDeals(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	deals, err := h.dealService.GetDealsByBrand(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get deals", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, deals)
}

// GetDealByID godoc
// @Summary Get deal by ID
// @Description Get one deal (brand must own it)
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} models.DealContract
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals/{id} [get]
func (h *DealHandler) GetDealByID(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	dealID := c.Param("id")

	deal, err := h.dealService.GetDealByID(brandID, dealID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get deal", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, deal)
}

// UpdateDealStatus godoc
// @Summary Update deal status
// @Description Advance a deal's contract/e-sign milestones
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body models.UpdateDealStatusRequest true "Deal status update"
// @Success 200 {object} models.DealContract
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals/{id}/status [patch]
func (h *DealHandler) UpdateDealStatus(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	dealID := c.Param("id")

	var req models.UpdateDealStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	deal, err := h.dealService.UpdateDealStatus(brandID, dealID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update deal status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, deal)
}

// CreatePayment godoc
// @Summary Record a payment
// @Description Record a payment against a deal
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body models.CreatePaymentRequest true "Create payment request"
// @Success 201 {object} models.Payment
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals/{id}/payments [post]
func (h *DealHandler) CreatePayment(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	dealID := c.Param("id")

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	payment, err := h.dealService.CreatePayment(brandID, dealID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments godoc
// @Summary List payments
// @Description List the payments recorded against a deal
// @Tags deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/deals/{id}/payments [get]
func (h *DealHandler) GetPayments(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	dealID := c.Param("id")

	payments, err := h.dealService.GetPayments(brandID, dealID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get payments", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, payments)
}
