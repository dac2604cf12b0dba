package handlers

import (
	"net/http"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/influmatch/influmatch-backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BrandHandler struct {
	brandService *services.BrandService
}

func NewBrandHandler(db *gorm.DB) *BrandHandler {
	brandRepo := repository.NewBrandRepository(db)
	return &BrandHandler{
		brandService: services.NewBrandService(brandRepo),
	}
}

// GetMyBrand godoc
// @Summary Get brand profile
// @Description Get the authenticated user's brand profile
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BrandResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/brands/me [get]
func (h *BrandHandler) GetMyBrand(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	brand, err := h.brandService.GetMyBrand(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get brand", "details": err.Error()})
		return
	}
	if brand == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand profile not set up"})
		return
	}

	c.JSON(http.StatusOK, brand)
}

// UpsertMyBrand godoc
// @Summary Create or update brand profile
// @Description Save the authenticated user's brand profile, creating it on first save
// @Tags brands
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpsertBrandRequest true "Brand profile"
// @Success 200 {object} models.BrandResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/brands/me [put]
func (h *BrandHandler) UpsertMyBrand(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	var req models.UpsertBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	brand, err := h.brandService.UpsertMyBrand(userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save brand", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, brand)
}
