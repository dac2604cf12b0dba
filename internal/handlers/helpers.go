package handlers

import (
	"net/http"

	"github.com/influmatch/influmatch-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// requireBrandID resolves the authenticated user's brand. When the user has
// not saved a brand profile yet it writes a 400 and returns false; brand-scoped
// endpoints cannot operate without one.
func requireBrandID(c *gin.Context, brandService *services.BrandService) (string, bool) {
	userID := c.MustGet("user_id").(string)

	brandID, err := brandService.ResolveBrandID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve brand", "details": err.Error()})
		return "", false
	}
	if brandID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Brand profile not set up"})
		return "", false
	}
	return brandID, true
}
