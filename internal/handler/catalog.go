package handler

import (
	"net/http"

	"github.com/hmdeck/cruise-packing/internal/catalog"
)

// GetDefaultItems handles GET /api/default-items.
// The catalog is fixed at compile time, so this never fails.
func (s *Server) GetDefaultItems(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.DefaultItems())
}
