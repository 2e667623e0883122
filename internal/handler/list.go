package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hmdeck/cruise-packing/internal/service"
)

// ListPackingLists handles GET /api/packing-lists.
func (s *Server) ListPackingLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.lists.List(r.Context())
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// GetPackingList handles GET /api/packing-lists/{id}.
func (s *Server) GetPackingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	list, err := s.lists.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err, "Packing list not found")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreatePackingList handles POST /api/packing-lists.
func (s *Server) CreatePackingList(w http.ResponseWriter, r *http.Request) {
	var params service.CreateListParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}

	created, err := s.lists.Create(r.Context(), params)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdatePackingList handles PUT /api/packing-lists/{id}.
func (s *Server) UpdatePackingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var params service.UpdateListParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		badRequest(w, "Invalid JSON body")
		return
	}

	updated, err := s.lists.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err, "Packing list not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeletePackingList handles DELETE /api/packing-lists/{id}.
// Success is 204 with no body.
func (s *Server) DeletePackingList(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.lists.Delete(r.Context(), id); err != nil {
		writeError(w, err, "Packing list not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
