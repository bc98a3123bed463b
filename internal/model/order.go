package model

import "time"

// OrderStatusPending is the status every new order starts in. Orders are
// append-only, so no later state exists yet.
const OrderStatusPending = "pending"

// Order links a placed order to a material identifier. The material itself
// is referenced by id only, never owned or modified.
type Order struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"materialId"`
	BuyerName  string    `json:"buyerName,omitempty"`
	Email      string    `json:"email,omitempty"`
	Contact    string    `json:"contact,omitempty"`
	Address    string    `json:"address,omitempty"`
	QuantityKG float64   `json:"quantityKG,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
