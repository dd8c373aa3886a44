package handlers

import (
	"net/http"

	"food-swipe-api/middleware"
	"food-swipe-api/models"
	"food-swipe-api/swipe"

	"github.com/gin-gonic/gin"
)

const invalidSwipeMessage = "Invalid request. Need orderId and action (like/dislike)"

type SwipeRequest struct {
	OrderID string             `json:"orderId" binding:"required"`
	Action  models.SwipeAction `json:"action" binding:"required"`
}

// RecordSwipe stores a like/dislike gesture for the current user
func (h *Handler) RecordSwipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidSwipeMessage})
		return
	}
	if err := swipe.CheckAction(req.Action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": invalidSwipeMessage})
		return
	}

	sw, err := h.Store.AddSwipe(c.Request.Context(), middleware.GetUserID(c), req.OrderID, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sw)
}

// GetSwipeHistory returns the current user's swipes, oldest first
func (h *Handler) GetSwipeHistory(c *gin.Context) {
	swipes, err := h.Store.SwipesByUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, swipes)
}
