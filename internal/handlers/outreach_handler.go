package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
	"github.com/influmatch/influmatch-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// sseHeartbeatInterval is how often open SSE streams emit a keep-alive
// comment. Shared by the outreach and notification stream handlers.
const sseHeartbeatInterval = 30 * time.Second

type OutreachHandler struct {
	outreachService *services.OutreachService
	brandService    *services.BrandService
	sseHub          *services.SSEHub
}

func NewOutreachHandler(db *gorm.DB, sseHub *services.SSEHub) *OutreachHandler {
	outreachRepo := repository.NewOutreachRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	influencerRepo := repository.NewInfluencerRepository(db)
	commLogRepo := repository.NewCommunicationLogRepository(db)
	brandRepo := repository.NewBrandRepository(db)

	callSimService := services.NewCallSimulationService(outreachRepo, commLogRepo, sseHub)
	outreachService := services.NewOutreachService(outreachRepo, campaignRepo, influencerRepo, commLogRepo, callSimService, sseHub)

	return &OutreachHandler{
		outreachService: outreachService,
		brandService:    services.NewBrandService(brandRepo),
		sseHub:          sseHub,
	}
}

// CreateOutreach godoc
// @Summary Initiate outreach
// @Description Start an outreach activity toward an influencer for a campaign. Phone-method requests with display names trigger the call simulation synchronously.
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOutreachRequest true "Create outreach request"
// @Success 201 {object} models.OutreachResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach [post]
func (h *OutreachHandler) CreateOutreach(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	var req models.CreateOutreachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.outreachService.CreateOutreach(brandID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "invalid") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create outreach", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListOutreach godoc
// @Summary List outreach activities
// @Description List the brand's outreach activities, most recently updated first. Filters combine with AND.
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param campaign_id query string false "Filter by campaign"
// @Param influencer_id query string false "Filter by influencer"
// @Param status query string false "Filter by status label"
// @Param method query string false "Filter by method"
// @Success 200 {array} models.OutreachResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach [get]
func (h *OutreachHandler) ListOutreach(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	var filter models.OutreachFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter parameters", "details": err.Error()})
		return
	}

	activities, err := h.outreachService.ListOutreach(brandID, &filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outreach", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetOutreach godoc
// @Summary Get outreach by ID
// @Description Get one outreach activity (brand must own it)
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outreach ID"
// @Success 200 {object} models.OutreachResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach/{id} [get]
func (h *OutreachHandler) GetOutreach(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	outreachID := c.Param("id")

	response, err := h.outreachService.GetOutreach(brandID, outreachID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outreach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get outreach", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateOutreachStatus godoc
// @Summary Update outreach status
// @Description Apply a status transition to an outreach activity. Any label is accepted (last write wins); legacy labels are canonicalized.
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outreach ID"
// @Param request body models.UpdateOutreachStatusRequest true "New status"
// @Success 200 {object} models.OutreachResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach/{id}/status [patch]
func (h *OutreachHandler) UpdateOutreachStatus(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	outreachID := c.Param("id")

	var req models.UpdateOutreachStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.outreachService.UpdateStatus(brandID, outreachID, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outreach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update outreach status", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SimulateCall godoc
// @Summary Run the call simulation
// @Description Generate the scripted five-turn phone conversation for an outreach and persist it as communication logs
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outreach ID"
// @Param request body models.SimulateCallRequest true "Display names for the transcript"
// @Success 200 {object} services.CallSimulationResult
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach/{id}/simulate-call [post]
func (h *OutreachHandler) SimulateCall(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	outreachID := c.Param("id")

	var req models.SimulateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	result, err := h.outreachService.SimulateCall(brandID, outreachID, req.InfluencerName, req.CampaignName, req.BrandName)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outreach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to simulate call", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCommunicationLogs godoc
// @Summary Get communication logs
// @Description Get an outreach's communication history in conversation order
// @Tags outreach
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Outreach ID"
// @Success 200 {array} models.CommunicationLogResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/outreach/{id}/logs [get]
func (h *OutreachHandler) GetCommunicationLogs(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	outreachID := c.Param("id")

	logs, err := h.outreachService.GetCommunicationLogs(brandID, outreachID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Outreach not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get communication logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// StreamOutreachSSE godoc
// @Summary Stream outreach events via SSE
// @Description Stream communication-log events for one outreach in real time
// @Tags outreach
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Param id path string true "Outreach ID"
// @Success 200 "SSE stream"
// @Router /api/v1/outreach/{id}/stream [get]
func (h *OutreachHandler) StreamOutreachSSE(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	outreachID := c.Param("id")

	// Ownership check before opening the stream
	if _, err := h.outreachService.GetOutreach(brandID, outreachID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Outreach not found"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient("outreach", outreachID)
	defer h.sseHub.UnregisterClient("outreach", outreachID, clientChan)

	c.SSEvent("connected", gin.H{
		"outreach_id": outreachID,
		"message":     "Connected to outreach stream",
	})
	c.Writer.Flush()

	// Periodic heartbeats keep proxies from closing an idle stream
	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: outreach/%s", outreachID)
			return
		case <-heartbeat.C:
			h.sseHub.SendHeartbeat("outreach", outreachID)
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			if _, err := c.Writer.Write(message); err != nil {
				logrus.Errorf("Failed to write SSE message: %v", err)
				return
			}
			c.Writer.Flush()
		}
	}
}
