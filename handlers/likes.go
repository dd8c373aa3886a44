package handlers

import (
	"net/http"

	"food-swipe-api/middleware"

	"github.com/gin-gonic/gin"
)

// ToggleLike likes or unlikes an order for the current user
func (h *Handler) ToggleLike(c *gin.Context) {
	result, err := h.Store.ToggleLike(c.Request.Context(), middleware.GetUserID(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetOrderLikes(c *gin.Context) {
	likes, err := h.Store.LikesByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// GetLikeStatus tells whether the current user likes the order
func (h *Handler) GetLikeStatus(c *gin.Context) {
	liked, err := h.Store.IsLiked(c.Request.Context(), middleware.GetUserID(c), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
