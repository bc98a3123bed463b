package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Image string `json:"image" binding:"required"`
}

// AnalyzeImage handles the POST /api/analyze request: label a base64-encoded
// image without keeping it or appending a record. Accepts bare base64 or a
// data: URL.
func (h *Handler) AnalyzeImage(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no image data provided"})
		return
	}

	payload := req.Image
	if i := strings.IndexByte(payload, ','); i >= 0 {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image data"})
		return
	}

	tempPath, err := h.files.WriteTemp(data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
		return
	}
	defer h.files.Remove(tempPath)

	c.JSON(http.StatusOK, h.labeler.Label(tempPath))
}
