package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// GetInfo handles the GET / request with a map of the available endpoints.
func (h *Handler) GetInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Textile Market API",
		"version": apiVersion,
		"endpoints": gin.H{
			"upload":    "/api/upload",
			"analyze":   "/api/analyze",
			"materials": "/api/materials",
			"orders":    "/api/orders",
			"stats":     "/api/stats",
			"images":    "/uploads/<filename>",
		},
	})
}
