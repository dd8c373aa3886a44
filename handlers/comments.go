package handlers

import (
	"net/http"

	"food-swipe-api/middleware"

	"github.com/gin-gonic/gin"
)

type CommentRequest struct {
	Text     string `json:"text" binding:"required"`
	Username string `json:"username"`
}

// AddComment attaches a comment from the current user to an order
func (h *Handler) AddComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}
	comment, err := h.Store.AddComment(c.Request.Context(), c.Param("orderId"), middleware.GetUserID(c), req.Username, req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

func (h *Handler) GetOrderComments(c *gin.Context) {
	comments, err := h.Store.CommentsByOrder(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// DeleteComment removes a comment, but only one written by the current user
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.Store.DeleteComment(c.Request.Context(), c.Param("commentId"), middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
