package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cityscope/config"
	"cityscope/internal/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openWeatherForServer(server *httptest.Server) *OpenWeather {
	return NewOpenWeather(&config.ExternalConfig{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: server.URL,
	}, NewHTTPClient(time.Second))
}

func TestCurrentByCity_PassesPayloadThrough(t *testing.T) {
	payload := `{"name":"Paris","main":{"temp":21.4},"weather":[{"description":"clear sky"}]}`
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/weather", request.URL.Path)
		query := request.URL.Query()
		assert.Equal(t, "Paris", query.Get("q"))
		assert.Equal(t, "test-key", query.Get("appid"))
		assert.Equal(t, "metric", query.Get("units"))

		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(payload))
	}))
	defer server.Close()

	data, err := openWeatherForServer(server).CurrentByCity(context.Background(), "Paris")
	require.NoError(t, err)
	assert.JSONEq(t, payload, string(data))
}

func TestForecastByCoords_SendsCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/forecast", request.URL.Path)
		query := request.URL.Query()
		assert.Equal(t, "48.85", query.Get("lat"))
		assert.Equal(t, "2.35", query.Get("lon"))

		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"list":[]}`))
	}))
	defer server.Close()

	_, err := openWeatherForServer(server).ForecastByCoords(context.Background(), 48.85, 2.35)
	require.NoError(t, err)
}

func TestCurrentByCity_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := openWeatherForServer(server).CurrentByCity(context.Background(), "Paris")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUpstream))
	assert.Contains(t, err.Error(), "Failed to fetch current weather")
}

func TestForecastByCity_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	weather := NewOpenWeather(&config.ExternalConfig{
		OpenWeatherAPIKey:  "test-key",
		OpenWeatherBaseURL: server.URL,
	}, NewHTTPClient(20*time.Millisecond))

	_, err := weather.ForecastByCity(context.Background(), "Paris")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindUpstreamTimeout))
}
