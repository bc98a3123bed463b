package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats handles the GET /api/stats request.
func (h *Handler) GetStats(c *gin.Context) {
	materials, orders := h.store.Counts()
	c.JSON(http.StatusOK, gin.H{
		"total_materials": materials,
		"total_orders":    orders,
	})
}
