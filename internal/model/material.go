package model

import "time"

// StatusAvailable is the only status a material ever carries: records are
// append-only and are not mutated after creation.
const StatusAvailable = "available"

// DefaultFactoryID and DefaultFactoryName are assumed for uploads that do
// not identify the submitting factory.
const (
	DefaultFactoryID   = "FAC-001"
	DefaultFactoryName = "Factory"
)

// Material describes one uploaded textile sample plus its generated labels.
type Material struct {
	ID          string    `json:"id"`
	FactoryID   string    `json:"factoryID"`
	FactoryName string    `json:"factoryName"`
	Filename    string    `json:"filename"`
	StoredPath  string    `json:"storedPath"`
	ImageURL    string    `json:"imageURL"`
	Color       string    `json:"color"`
	Texture     string    `json:"texture"`
	Pattern     string    `json:"pattern"`
	Quality     string    `json:"quality"`
	QuantityKG  float64   `json:"quantityKG"`
	PricePerKG  float64   `json:"pricePerKG"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Analysis holds the four generated labels for a single image.
type Analysis struct {
	Color   string `json:"color"`
	Texture string `json:"texture"`
	Pattern string `json:"pattern"`
	Quality string `json:"quality"`
}
