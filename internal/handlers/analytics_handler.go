package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/services"
	"github.com/influmatch/influmatch-backend/internal/services/excel"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	excelService     *excel.Service
	brandService     *services.BrandService
}

func NewAnalyticsHandler(db *gorm.DB, excelService *excel.Service) *AnalyticsHandler {
	analyticsRepo := repository.NewAnalyticsRepository(db)
	outreachRepo := repository.NewOutreachRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	commLogRepo := repository.NewCommunicationLogRepository(db)
	brandRepo := repository.NewBrandRepository(db)

	return &AnalyticsHandler{
		analyticsService: services.NewAnalyticsService(analyticsRepo, outreachRepo, notificationRepo, commLogRepo),
		excelService:     excelService,
		brandService:     services.NewBrandService(brandRepo),
	}
}

// GetDashboardStats godoc
// @Summary Get dashboard stats
// @Description Get the brand's headline counters: active outreach, attention required, successful deals and unread notifications
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboardStats(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	stats, err := h.analyticsService.GetDashboardStats(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get dashboard stats", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCampaignSummaries godoc
// @Summary Get campaign summaries
// @Description Get per-campaign outreach and deal rollups
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CampaignSummary
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/analytics/campaigns [get]
func (h *AnalyticsHandler) GetCampaignSummaries(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	summaries, err := h.analyticsService.GetCampaignSummaries(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get campaign summaries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetRecentActivity godoc
// @Summary Get recent activity
// @Description Get the newest communication-log entries across the brand's outreach activities, newest first
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries to return" default(20)
// @Success 200 {array} models.CommunicationLogResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/analytics/activity [get]
func (h *AnalyticsHandler) GetRecentActivity(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = services.DefaultActivityFeedLimit
	}

	activity, err := h.analyticsService.GetRecentActivity(brandID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get recent activity", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ExportOutreach godoc
// @Summary Export outreach to Excel
// @Description Export the brand's outreach tracker and campaign summaries as an xlsx workbook
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} excel.ExportResult
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/analytics/export [post]
func (h *AnalyticsHandler) ExportOutreach(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	result, err := h.excelService.ExportOutreachToExcel(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export outreach", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DownloadExport godoc
// @Summary Download an exported file
// @Description Download a previously exported xlsx workbook by filename
// @Tags analytics
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param filename path string true "Export filename"
// @Success 200 "file"
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/v1/analytics/export/{filename} [get]
func (h *AnalyticsHandler) DownloadExport(c *gin.Context) {
	if _, ok := requireBrandID(c, h.brandService); !ok {
		return
	}

	filename := c.Param("filename")
	filePath := h.excelService.GetExportFilePath(filename)

	if _, err := os.Stat(filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Export not found"})
		return
	}

	c.FileAttachment(filePath, filename)
}
