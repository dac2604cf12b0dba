package handlers

import (
	"net/http"
	"strings"

	"github.com/influmatch/influmatch-backend/internal/services/api_key"

	"github.com/gin-gonic/gin"
)

type APIKeyHandler struct {
	apiKeyService *api_key.Service
}

func NewAPIKeyHandler(apiKeyService *api_key.Service) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
	}
}

// GenerateAPIKey godoc
// @Summary Generate an API key
// @Description Issue a fresh agent API key for the authenticated user, replacing any existing one
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.APIKey
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys [post]
func (h *APIKeyHandler) GenerateAPIKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	apiKey, err := h.apiKeyService.GenerateAPIKey(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") || strings.Contains(err.Error(), "not active") {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate API key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, apiKey)
}

// GetMyAPIKey godoc
// @Summary Get own API key
// @Description Get the authenticated user's agent API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIKey
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys [get]
func (h *APIKeyHandler) GetMyAPIKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	apiKey, err := h.apiKeyService.GetAPIKeyByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get API key", "details": err.Error()})
		return
	}
	if apiKey == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	c.JSON(http.StatusOK, apiKey)
}

// DeleteAPIKey godoc
// @Summary Revoke own API key
// @Description Delete the authenticated user's agent API key
// @Tags api-keys
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/api-keys [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	userID := c.MustGet("user_id").(string)

	if err := h.apiKeyService.DeleteAPIKey(userID); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete API key", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted successfully"})
}
