package middleware

import (
	"food-swipe-api/models"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// CurrentUser resolves the caller. There is no authentication, so every
// request acts as the anonymous user; handlers still read the id from the
// context instead of assuming it.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(userIDKey, models.AnonymousUserID)
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) string {
	if id := c.GetString(userIDKey); id != "" {
		return id
	}
	return models.AnonymousUserID
}
