package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hmdeck/cruise-packing/internal/domain"
)

// errorResponse is the envelope for every error body: a human-readable
// message plus, for validation failures, the per-field breakdown.
// Errors are never bare strings.
type errorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// writeJSON serializes v with the given status. Encoding failures at this
// point cannot be reported to the client anymore, so they are only logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeError maps a service error onto the HTTP surface:
// validation -> 400 with field details, not-found -> 404, invalid input
// -> 400, anything else -> a logged generic 500 that leaks no internals.
func writeError(w http.ResponseWriter, err error, notFoundMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid data", Errors: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: notFoundMsg})
	case errors.Is(err, domain.ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid input"})
	default:
		slog.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

// badRequest reports a request rejected before reaching the service layer
// (e.g. missing or malformed body, missing query parameter).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}
