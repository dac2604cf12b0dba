package middleware

import (
	"net/http"
	"strings"

	"github.com/influmatch/influmatch-backend/internal/services/api_key"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware handles API key authentication for agent callbacks
type APIKeyMiddleware struct {
	apiKeyService *api_key.Service
}

// NewAPIKeyMiddleware creates a new API key middleware
func NewAPIKeyMiddleware(apiKeyService *api_key.Service) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKeyService: apiKeyService,
	}
}

// APIKeyAuthMiddleware validates an "ApiKey <key>" Authorization header and
// sets user context. Requests without an ApiKey prefix pass through for the
// bearer middleware to handle.
func (m *APIKeyMiddleware) APIKeyAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization header is required",
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "ApiKey ") {
			// Not an API key, let other middleware handle it
			c.Next()
			return
		}

		apiKey := strings.TrimPrefix(authHeader, "ApiKey ")
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid API key format",
			})
			c.Abort()
			return
		}

		user, err := m.apiKeyService.ValidateAPIKey(apiKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("user", user)
		c.Set("is_admin", user.IsAdmin)
		c.Set("auth_type", "api_key")

		c.Next()
	}
}
