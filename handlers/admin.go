package handlers

import (
	"net/http"

	"food-swipe-api/store"

	"github.com/gin-gonic/gin"
)

// ── Orders ──────────────────────────────────────────────────────────────────

// AdminListOrders returns every order, unfiltered
func (h *Handler) AdminListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Orders())
}

func (h *Handler) AdminGetOrder(c *gin.Context) {
	order, err := h.Store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) AdminCreateOrder(c *gin.Context) {
	var in store.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Store.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

// AdminUpdateOrder overwrites only the fields present in the body
func (h *Handler) AdminUpdateOrder(c *gin.Context) {
	var in store.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.Store.UpdateOrder(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *Handler) AdminDeleteOrder(c *gin.Context) {
	if err := h.Store.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ── Restaurants ─────────────────────────────────────────────────────────────

func (h *Handler) AdminListRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Restaurants())
}

func (h *Handler) AdminGetRestaurant(c *gin.Context) {
	restaurant, err := h.Store.Restaurant(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

func (h *Handler) AdminCreateRestaurant(c *gin.Context) {
	var in store.RestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := h.Store.CreateRestaurant(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

// AdminUpdateRestaurant overwrites only the fields present in the body
func (h *Handler) AdminUpdateRestaurant(c *gin.Context) {
	var in store.RestaurantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	restaurant, err := h.Store.UpdateRestaurant(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurant": restaurant})
}

// AdminDeleteRestaurant is refused while any order still points at the restaurant
func (h *Handler) AdminDeleteRestaurant(c *gin.Context) {
	if err := h.Store.DeleteRestaurant(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
