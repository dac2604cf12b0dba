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

// AgentHandler serves the API-key-protected callback surface used by
// external AI agents to report conversation progress.
type AgentHandler struct {
	outreachService *services.OutreachService
}

func NewAgentHandler(db *gorm.DB, sseHub *services.SSEHub, notificationService *services.NotificationService) *AgentHandler {
	outreachRepo := repository.NewOutreachRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	influencerRepo := repository.NewInfluencerRepository(db)
	commLogRepo := repository.NewCommunicationLogRepository(db)

	callSimService := services.NewCallSimulationService(outreachRepo, commLogRepo, sseHub)
	outreachService := services.NewOutreachService(outreachRepo, campaignRepo, influencerRepo, commLogRepo, callSimService, sseHub)
	outreachService.AttachNotifications(notificationService)

	return &AgentHandler{
		outreachService: outreachService,
	}
}

// AppendCommunicationLog godoc
// @Summary Report a communication log entry
// @Description Append a message/turn to an outreach's communication history (agent callback)
// @Tags agent
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCommunicationLogRequest true "Communication log entry"
// @Success 201 {object} models.CommunicationLog
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/agent/communication-logs [post]
func (h *AgentHandler) AppendCommunicationLog(c *gin.Context) {
	var req models.CreateCommunicationLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	log, err := h.outreachService.AppendCommunicationLog(&req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append communication log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, log)
}

// UpdateOutreachStatus godoc
// @Summary Report an outreach status change
// @Description Apply a status transition reported by an agent (agent callback)
// @Tags agent
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Outreach ID"
// @Param request body models.UpdateOutreachStatusRequest true "New status"
// @Success 200 {object} models.OutreachResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/agent/outreach/{id}/status [patch]
func (h *AgentHandler) UpdateOutreachStatus(c *gin.Context) {
	outreachID := c.Param("id")

	var req models.UpdateOutreachStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	response, err := h.outreachService.AgentUpdateStatus(outreachID, &req)
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
