package handler

import (
	"net/http"

	"aviengine/internal/catalog"
	"aviengine/internal/model"
)

// CatalogHandler serves the interview question catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List handles GET /v1/catalog, optionally filtered by ?category=
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		questions := h.catalog.ByCategory(model.Category(category))
		if questions == nil {
			writeError(w, http.StatusNotFound, "unknown category")
			return
		}
		writeJSON(w, http.StatusOK, questions)
		return
	}

	writeJSON(w, http.StatusOK, h.catalog.All())
}

// Stats handles GET /v1/catalog/stats
func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Stats())
}
