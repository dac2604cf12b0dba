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

type NotificationHandler struct {
	notificationService *services.NotificationService
	brandService        *services.BrandService
	sseHub              *services.SSEHub
}

func NewNotificationHandler(db *gorm.DB, notificationService *services.NotificationService, sseHub *services.SSEHub) *NotificationHandler {
	brandRepo := repository.NewBrandRepository(db)

	return &NotificationHandler{
		notificationService: notificationService,
		brandService:        services.NewBrandService(brandRepo),
		sseHub:              sseHub,
	}
}

// GetMyNotifications godoc
// @Summary List notifications
// @Description List the brand's notifications, newest first
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Notification
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	notifications, err := h.notificationService.GetByBrand(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get notifications", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount godoc
// @Summary Get unread notification count
// @Description Count the brand's unread notifications
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UnreadCountResponse
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(brandID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.UnreadCountResponse{Unread: count})
}

// MarkAsRead godoc
// @Summary Mark notification as read
// @Description Mark one notification as read. Marking an already-read notification is a no-op.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}
	notificationID := c.Param("id")

	if err := h.notificationService.MarkAsRead(brandID, notificationID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification as read", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllAsRead godoc
// @Summary Mark all notifications as read
// @Description Mark every unread notification of the brand as read
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/notifications/read-all [patch]
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllAsRead(brandID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications as read", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}

// StreamNotificationsSSE godoc
// @Summary Stream notifications via SSE
// @Description Stream the brand's notification and communication-log events in real time
// @Tags notifications
// @Accept json
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 "SSE stream"
// @Router /api/v1/notifications/stream [get]
func (h *NotificationHandler) StreamNotificationsSSE(c *gin.Context) {
	brandID, ok := requireBrandID(c, h.brandService)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable buffering for nginx

	clientChan := h.sseHub.RegisterClient("brand", brandID)
	defer h.sseHub.UnregisterClient("brand", brandID, clientChan)

	c.SSEvent("connected", gin.H{
		"brand_id": brandID,
		"message":  "Connected to notification stream",
	})
	c.Writer.Flush()

	// Periodic heartbeats keep proxies from closing an idle stream
	heartbeat := time.NewTicker(sseHeartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			logrus.Infof("SSE client disconnected: brand/%s", brandID)
			return
		case <-heartbeat.C:
			h.sseHub.SendHeartbeat("brand", brandID)
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
