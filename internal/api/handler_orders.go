package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"textile-market-backend/internal/ident"
	"textile-market-backend/internal/model"
	"textile-market-backend/internal/store"
)

type createOrderRequest struct {
	MaterialID string  `json:"materialId" binding:"required"`
	BuyerName  string  `json:"buyerName"`
	Email      string  `json:"email"`
	Contact    string  `json:"contact"`
	Address    string  `json:"address"`
	QuantityKG float64 `json:"quantityKG"`
}

// CreateOrder handles the POST /api/orders request. The referenced material
// must exist; unknown ids fail with 404. Materials are append-only, so an
// order never modifies the material it references.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "materialId is required"})
		return
	}

	if _, err := h.store.MaterialByID(req.MaterialID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "material not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	order := model.Order{
		ID:         ident.NewRecordID("ORD"),
		MaterialID: req.MaterialID,
		BuyerName:  req.BuyerName,
		Email:      req.Email,
		Contact:    req.Contact,
		Address:    req.Address,
		QuantityKG: req.QuantityKG,
		Status:     model.OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
	h.store.AppendOrder(order)

	c.JSON(http.StatusCreated, order)
}

// ListOrders handles the GET /api/orders request.
func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Orders())
}
