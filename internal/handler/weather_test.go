package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeather_200(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/weather?destination=Caribbean+Cruise&date=2024-07-15", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockListServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Caribbean Cruise", body["destination"])
	assert.Equal(t, "2024-07-15", body["date"])
	assert.Equal(t, "summer", body["season"])
	assert.Equal(t, "Historical weather patterns", body["source"])

	temp, ok := body["temperature"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 88, temp["high"])
	assert.EqualValues(t, 79, temp["low"])
}

func TestGetWeather_400_MissingParams(t *testing.T) {
	for _, url := range []string{
		"/api/weather",
		"/api/weather?destination=Caribbean",
		"/api/weather?date=2024-07-15",
	} {
		req := httptest.NewRequest(http.MethodGet, url, nil)
		rec := httptest.NewRecorder()
		newHTTPHandler(&mockListServicer{}).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, url)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Destination and date are required", body["message"], url)
	}
}

func TestGetWeather_400_UnparsableDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/weather?destination=Caribbean&date=tomorrow", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(&mockListServicer{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
