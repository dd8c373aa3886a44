package handlers

import (
	"net/http"

	"food-swipe-api/store"

	"github.com/gin-gonic/gin"
)

// Health reports that the API is up
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Food Swipe API is running",
	})
}

// ListRestaurants returns all restaurants, optionally filtered by cuisine or name
func (h *Handler) ListRestaurants(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListRestaurants(store.RestaurantFilter{
		Cuisine: c.Query("cuisine"),
		Search:  c.Query("search"),
	}))
}

// GetRestaurant returns a single restaurant together with its orders
func (h *Handler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.Store.RestaurantWithOrders(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ListOrders returns every order in the feed
func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ListOrders(store.OrderFilter{
		Category: c.Query("category"),
		Cuisine:  c.Query("cuisine"),
		Search:   c.Query("search"),
	}))
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Store.Order(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetRestaurantOrders returns the orders belonging to one restaurant. An
// unknown restaurant simply has no orders.
func (h *Handler) GetRestaurantOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.OrdersByRestaurant(c.Param("restaurantId")))
}
