package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"textile-market-backend/internal/model"
	"textile-market-backend/internal/store"
)

// ListMaterials handles the GET /api/materials request. Records come back as
// a bare JSON array in insertion order. Optional color/texture query params
// filter by case-insensitive substring match against the generated labels.
func (h *Handler) ListMaterials(c *gin.Context) {
	materials := h.store.Materials()

	color := c.Query("color")
	texture := c.Query("texture")
	if color != "" || texture != "" {
		filtered := make([]model.Material, 0, len(materials))
		for _, m := range materials {
			if color != "" && !containsFold(m.Color, color) {
				continue
			}
			if texture != "" && !containsFold(m.Texture, texture) {
				continue
			}
			filtered = append(filtered, m)
		}
		materials = filtered
	}

	c.JSON(http.StatusOK, materials)
}

// ListFactoryMaterials handles the GET /api/factory/materials request: the
// factory dashboard view, restricted to one factory's own uploads.
func (h *Handler) ListFactoryMaterials(c *gin.Context) {
	factoryID := c.DefaultQuery("factory_id", model.DefaultFactoryID)

	materials := h.store.Materials()
	filtered := make([]model.Material, 0, len(materials))
	for _, m := range materials {
		if m.FactoryID == factoryID {
			filtered = append(filtered, m)
		}
	}

	c.JSON(http.StatusOK, filtered)
}

// GetMaterial handles the GET /api/materials/{id} request.
func (h *Handler) GetMaterial(c *gin.Context) {
	material, err := h.store.MaterialByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, material)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
