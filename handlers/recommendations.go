package handlers

import (
	"net/http"

	"food-swipe-api/middleware"
	"food-swipe-api/recommend"

	"github.com/gin-gonic/gin"
)

// GetRecommendations ranks restaurants and orders from the current user's swipes
func (h *Handler) GetRecommendations(c *gin.Context) {
	result, err := recommend.ForUser(c.Request.Context(), h.Store, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
