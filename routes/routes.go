package routes

import (
	"food-swipe-api/handlers"
	"food-swipe-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	api := r.Group("/api")
	api.Use(middleware.CurrentUser())

	api.GET("/health", h.Health)

	// ── Catalog ────────────────────────────────────────────────────
	orders := api.Group("/orders")
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/restaurant/:restaurantId", h.GetRestaurantOrders)
	}

	restaurants := api.Group("/restaurants")
	{
		restaurants.GET("", h.ListRestaurants)
		restaurants.GET("/:id", h.GetRestaurant)
	}

	// ── Swiping & engagement ───────────────────────────────────────
	swipes := api.Group("/swipes")
	{
		swipes.POST("", h.RecordSwipe)
		swipes.GET("/history", h.GetSwipeHistory)
	}

	likes := api.Group("/likes")
	{
		likes.POST("/orders/:orderId", h.ToggleLike)
		likes.GET("/orders/:orderId", h.GetOrderLikes)
		likes.GET("/orders/:orderId/status", h.GetLikeStatus)
	}

	comments := api.Group("/comments")
	{
		comments.POST("/orders/:orderId", h.AddComment)
		comments.GET("/orders/:orderId", h.GetOrderComments)
		comments.DELETE("/:commentId", h.DeleteComment)
	}

	api.GET("/recommendations", h.GetRecommendations)

	// ── Admin (document writes) ────────────────────────────────────
	admin := api.Group("/admin")
	{
		admin.GET("/orders", h.AdminListOrders)
		admin.GET("/orders/:id", h.AdminGetOrder)
		admin.POST("/orders", h.AdminCreateOrder)
		admin.PUT("/orders/:id", h.AdminUpdateOrder)
		admin.DELETE("/orders/:id", h.AdminDeleteOrder)

		admin.GET("/restaurants", h.AdminListRestaurants)
		admin.GET("/restaurants/:id", h.AdminGetRestaurant)
		admin.POST("/restaurants", h.AdminCreateRestaurant)
		admin.PUT("/restaurants/:id", h.AdminUpdateRestaurant)
		admin.DELETE("/restaurants/:id", h.AdminDeleteRestaurant)
	}
}
