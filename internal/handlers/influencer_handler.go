package handlers

import (
	"net/http"
	"strings"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/influmatch/influmatch-backend/internal/services"
	"github.com/influmatch/influmatch-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InfluencerHandler struct {
	influencerService *services.InfluencerService
}

func NewInfluencerHandler(db *gorm.DB) *InfluencerHandler {
	influencerRepo := repository.NewInfluencerRepository(db)
	platformAccountRepo := repository.NewPlatformAccountRepository(db)

	return &InfluencerHandler{
		influencerService: services.NewInfluencerService(influencerRepo, platformAccountRepo),
	}
}

// SearchInfluencers godoc
// @Summary Search the influencer directory
// @Description Filter the shared influencer directory. All supplied filters are combined with AND; results are ordered by follower estimate descending.
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param niche query string false "Niche (exact, case-sensitive)"
// @Param content_type query string false "Content type (exact, case-sensitive)"
// @Param location query string false "Location substring (case-insensitive)"
// @Param availability query string false "Availability (exact)"
// @Param min_followers query int false "Minimum follower estimate (inclusive)"
// @Param max_followers query int false "Maximum follower estimate (inclusive)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/influencers [get]
func (h *InfluencerHandler) SearchInfluencers(c *gin.Context) {
	var filter models.InfluencerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters", "details": err.Error()})
		return
	}

	influencers, err := h.influencerService.Search(&filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search influencers", "details": err.Error()})
		return
	}

	// Pagination runs after the service-layer set filters so page counts
	// reflect the fully filtered result.
	page, pageSize := utils.ParsePaginationFromQuery(c.Query("page"), c.Query("page_size"))
	total := len(influencers)
	offset := utils.CalculateOffset(page, pageSize)
	if offset > total {
		offset = total
	}
	end := offset + pageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       influencers[offset:end],
		"pagination": utils.CalculatePaginationInfo(total, page, pageSize),
	})
}

// GetInfluencerByID godoc
// @Summary Get influencer by ID
// @Description Get a single directory entry
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Influencer ID"
// @Success 200 {object} models.Influencer
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/influencers/{id} [get]
func (h *InfluencerHandler) GetInfluencerByID(c *gin.Context) {
	influencerID := c.Param("id")

	influencer, err := h.influencerService.GetByID(influencerID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Influencer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get influencer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, influencer)
}

// CreateInfluencer godoc
// @Summary Add a directory entry
// @Description Add an influencer to the shared directory
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateInfluencerRequest true "Create influencer request"
// @Success 201 {object} models.Influencer
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/influencers [post]
func (h *InfluencerHandler) CreateInfluencer(c *gin.Context) {
	var req models.CreateInfluencerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	influencer, err := h.influencerService.Create(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create influencer", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, influencer)
}

// UpsertPlatformAccount godoc
// @Summary Save a platform account
// @Description Create or update an influencer's per-platform follower breakdown
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Influencer ID"
// @Param request body models.UpsertPlatformAccountRequest true "Platform account"
// @Success 200 {object} models.PlatformAccount
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/influencers/{id}/platforms [put]
func (h *InfluencerHandler) UpsertPlatformAccount(c *gin.Context) {
	influencerID := c.Param("id")

	var req models.UpsertPlatformAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	account, err := h.influencerService.UpsertPlatformAccount(influencerID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Influencer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save platform account", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, account)
}

// GetPlatformAccounts godoc
// @Summary Get platform accounts
// @Description Get an influencer's per-platform follower breakdown
// @Tags influencers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Influencer ID"
// @Success 200 {array} models.PlatformAccount
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/influencers/{id}/platforms [get]
func (h *InfluencerHandler) GetPlatformAccounts(c *gin.Context) {
	influencerID := c.Param("id")

	accounts, err := h.influencerService.GetPlatformAccounts(influencerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get platform accounts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, accounts)
}
