package api

import (
	"textile-market-backend/internal/labeler"
	"textile-market-backend/internal/storage"
	"textile-market-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	files   *storage.FileStore
	labeler labeler.Labeler
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, files *storage.FileStore, l labeler.Labeler) *Handler {
	return &Handler{
		store:   s,
		files:   files,
		labeler: l,
	}
}
