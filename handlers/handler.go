package handlers

import (
	"net/http"

	"food-swipe-api/store"
	"food-swipe-api/utils/log"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Handler serves every /api route from one store.
type Handler struct {
	Store *store.Store
}

func New(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// respondError maps store errors onto HTTP statuses. Unexpected errors are
// echoed verbatim with a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrRestaurantHasOrders):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrRestaurantNotFound),
		errors.Is(err, store.ErrCommentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Log.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
