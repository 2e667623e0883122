package handler

import (
	"net/http"

	"github.com/hmdeck/cruise-packing/internal/weather"
)

// GetWeather handles GET /api/weather?destination=&date=.
// Both query parameters are required; the lookup itself is a pure function,
// so there is no service layer between the handler and the table.
func (s *Server) GetWeather(w http.ResponseWriter, r *http.Request) {
	destination := r.URL.Query().Get("destination")
	date := r.URL.Query().Get("date")
	if destination == "" || date == "" {
		badRequest(w, "Destination and date are required")
		return
	}

	forecast, err := weather.Lookup(destination, date)
	if err != nil {
		writeError(w, err, "")
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}
